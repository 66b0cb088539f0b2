package validator

// Director applies a fixed, ordered sequence of checks to a builder and
// returns the finished builder. Directors hold no state; registering a new
// field-type policy means writing a new Director, not touching the checks
// or the form pipeline.
type Director func(*Builder) *Builder

// Stock recipe parameters.
const (
	DefaultUsernameMaxLength = 20
	DefaultUsernameForbidden = "()<>[]{}"
	DefaultPasswordMinLength = 8
)

// UsernameDirector builds a username recipe with the given bounds:
// not-empty, then max length, then forbidden-character screening.
func UsernameDirector(maxLen int, forbidden string) Director {
	return func(b *Builder) *Builder {
		return b.NotEmpty().
			MaxLength(maxLen).
			NoForbiddenChars(forbidden)
	}
}

// PasswordDirector builds a password recipe with the given minimum length:
// min length, then lowercase, uppercase and digit presence.
func PasswordDirector(minLen int) Director {
	return func(b *Builder) *Builder {
		return b.MinLength(minLen).
			ContainsLowercase().
			ContainsUppercase().
			ContainsNumber()
	}
}

// Username is the stock username recipe with the default bounds.
func Username(b *Builder) *Builder {
	return UsernameDirector(DefaultUsernameMaxLength, DefaultUsernameForbidden)(b)
}

// Password is the stock password recipe with the default minimum length.
func Password(b *Builder) *Builder {
	return PasswordDirector(DefaultPasswordMinLength)(b)
}
