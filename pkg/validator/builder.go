package validator

import "github.com/dmitrymomot/formkit/pkg/rules"

// Builder accumulates validation failures for one target string. Checks run
// at chain time; reasons are appended in call order and never removed.
type Builder struct {
	value  string
	issues []rules.Reason
}

// New returns a fresh builder for value with no accumulated issues.
func New(value string) *Builder {
	return &Builder{value: value}
}

// Value returns the target string the builder validates.
func (b *Builder) Value() string {
	return b.value
}

// NotEmpty requires at least one character.
func (b *Builder) NotEmpty() *Builder {
	return b.apply(rules.NotEmpty(b.value))
}

// MinLength requires at least min characters.
func (b *Builder) MinLength(min int) *Builder {
	return b.apply(rules.MinLength(b.value, min))
}

// MaxLength requires at most max characters.
func (b *Builder) MaxLength(max int) *Builder {
	return b.apply(rules.MaxLength(b.value, max))
}

// ContainsNumber requires at least one decimal digit.
func (b *Builder) ContainsNumber() *Builder {
	return b.apply(rules.ContainsNumber(b.value))
}

// ContainsUppercase requires at least one uppercase letter.
func (b *Builder) ContainsUppercase() *Builder {
	return b.apply(rules.ContainsUppercase(b.value))
}

// ContainsLowercase requires at least one lowercase letter.
func (b *Builder) ContainsLowercase() *Builder {
	return b.apply(rules.ContainsLowercase(b.value))
}

// NoForbiddenChars requires that no character of the target belongs to the
// forbidden set.
func (b *Builder) NoForbiddenChars(forbidden string) *Builder {
	return b.apply(rules.NoForbiddenChars(b.value, forbidden))
}

// Validate reports whether every chained check passed, together with the
// reasons accumulated in call order. Safe to call any number of times.
func (b *Builder) Validate() (bool, []rules.Reason) {
	return len(b.issues) == 0, b.issues
}

func (b *Builder) apply(rule rules.Rule) *Builder {
	if !rule.Check() {
		b.issues = append(b.issues, rule.Reason)
	}
	return b
}
