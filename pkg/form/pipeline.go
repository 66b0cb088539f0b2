package form

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/rules"
)

// InvalidField pairs a mandatory field's ID with the issues recorded for it.
type InvalidField struct {
	FieldID string
	Issues  []rules.Reason
}

// ProcessResult is the aggregate outcome of one Process run. Valid is true
// iff InvalidFields is empty. InputData holds every original record,
// mandatory and optional, in scan order.
type ProcessResult struct {
	Valid         bool
	InputData     []InputData
	InvalidFields []InvalidField
}

// Pipeline owns an ordered set of input records and evaluates the mandatory
// ones on demand. Not safe for concurrent use.
type Pipeline struct {
	fields []InputData
	log    *slog.Logger
}

// Option configures a pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for processing diagnostics. Nil loggers
// are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithFields seeds the pipeline with initial records via Update, so
// duplicate field IDs collapse to the last record given.
func WithFields(fields ...InputData) Option {
	return func(p *Pipeline) {
		for _, f := range fields {
			p.Update(f)
		}
	}
}

// NewPipeline returns an empty pipeline logging through slog.Default unless
// overridden.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Update replaces the record with the same field ID in place, keeping its
// position, or appends the record when the ID is new. It does not trigger
// validation; call Process to observe the change.
func (p *Pipeline) Update(in InputData) {
	if in == nil {
		return
	}
	for i, existing := range p.fields {
		if existing.FieldID() == in.FieldID() {
			p.fields[i] = in
			return
		}
	}
	p.fields = append(p.fields, in)
}

// Remove drops the record with the given field ID. Unknown IDs are a
// silent no-op.
func (p *Pipeline) Remove(fieldID string) {
	for i, existing := range p.fields {
		if existing.FieldID() == fieldID {
			p.fields = append(p.fields[:i], p.fields[i+1:]...)
			return
		}
	}
}

// Reset discards every held record.
func (p *Pipeline) Reset() {
	p.fields = nil
}

// Fields returns the held records in insertion order.
func (p *Pipeline) Fields() []InputData {
	return slices.Clone(p.fields)
}

// Process evaluates the held set and assembles the aggregate result. It
// never fails; an empty set yields a valid result with empty sequences.
func (p *Pipeline) Process() ProcessResult {
	fields := slices.Clone(p.fields)

	var mandatory []Mandatory
	var optional []Optional
	for _, in := range fields {
		switch f := in.(type) {
		case Mandatory:
			mandatory = append(mandatory, f)
		case Optional:
			optional = append(optional, f)
		}
	}

	var invalid []InvalidField
	for _, m := range mandatory {
		if !m.IsValid() {
			invalid = append(invalid, InvalidField{
				FieldID: m.FieldID(),
				Issues:  m.Issues(),
			})
		}
	}

	result := ProcessResult{
		Valid:         len(invalid) == 0,
		InputData:     fields,
		InvalidFields: invalid,
	}

	p.log.Debug("form input processed",
		slog.Int("fields", len(fields)),
		slog.Int("mandatory", len(mandatory)),
		slog.Int("optional", len(optional)),
		slog.Int("invalid", len(invalid)),
		slog.Bool("valid", result.Valid),
	)

	return result
}
