package form

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/rules"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// InputData is one collected form field. The concrete type decides whether
// the field participates in validation: Mandatory does, Optional does not.
type InputData interface {
	FieldID() string
	Input() string
}

// Optional is a field carried through the pipeline without validation.
type Optional struct {
	fieldID string
	input   string
}

// NewOptional returns an optional field record.
func NewOptional(fieldID, input string) Optional {
	return Optional{fieldID: fieldID, input: input}
}

func (o Optional) FieldID() string { return o.fieldID }
func (o Optional) Input() string   { return o.input }

// Mandatory is a field whose issues were captured when the record was
// built. The issue list is fixed for the record's lifetime.
type Mandatory struct {
	fieldID string
	input   string
	issues  []rules.Reason
}

// NewMandatory runs director over a fresh builder for input and records the
// outcome. Issues keep the director's check order.
func NewMandatory(fieldID, input string, director validator.Director) Mandatory {
	_, issues := director(validator.New(input)).Validate()
	return Mandatory{fieldID: fieldID, input: input, issues: issues}
}

func (m Mandatory) FieldID() string { return m.fieldID }
func (m Mandatory) Input() string   { return m.input }

// Issues returns a copy of the recorded failure reasons in check order.
func (m Mandatory) Issues() []rules.Reason {
	return slices.Clone(m.issues)
}

// IsValid reports whether the record carries no issues.
func (m Mandatory) IsValid() bool {
	return len(m.issues) == 0
}
