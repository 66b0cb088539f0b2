package policy

import (
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Stock field IDs covered by the default policy.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// Policy maps field IDs to check recipes. Fields without a registered
// recipe are treated as optional.
type Policy struct {
	directors map[string]validator.Director
	sanitize  func(string) string
}

// Option configures a policy.
type Option func(*Policy)

// WithSanitizer normalizes raw input before a record is built. The checks
// themselves always see the sanitized value; pass nothing to validate raw
// input as collected.
func WithSanitizer(fn func(string) string) Option {
	return func(p *Policy) {
		if fn != nil {
			p.sanitize = fn
		}
	}
}

// New returns a policy with the stock username and password recipes bound
// to the bounds in cfg.
func New(cfg Config, opts ...Option) *Policy {
	p := &Policy{
		directors: map[string]validator.Director{
			FieldUsername: validator.UsernameDirector(cfg.UsernameMaxLength, cfg.UsernameForbidden),
			FieldPassword: validator.PasswordDirector(cfg.PasswordMinLength),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register maps a field ID to a director, overriding any existing recipe.
// Nil directors are ignored.
func (p *Policy) Register(fieldID string, director validator.Director) {
	if director == nil {
		return
	}
	p.directors[fieldID] = director
}

// Mandatory reports whether a recipe is registered for the field ID.
func (p *Policy) Mandatory(fieldID string) bool {
	_, ok := p.directors[fieldID]
	return ok
}

// Classify builds the input record for one collected field. Fields with a
// registered recipe become mandatory records with issues precomputed
// through the recipe; everything else is carried as optional.
func (p *Policy) Classify(fieldID, input string) form.InputData {
	if p.sanitize != nil {
		input = p.sanitize(input)
	}
	if director, ok := p.directors[fieldID]; ok {
		return form.NewMandatory(fieldID, input, director)
	}
	return form.NewOptional(fieldID, input)
}
