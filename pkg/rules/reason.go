package rules

// Reason identifies why a single check failed. Reasons carry no payload:
// callers that need the configured bound or character set consult the rule
// parameters they supplied, not the reason.
type Reason string

const (
	// IsEmpty is reported by NotEmpty for a zero-length string.
	IsEmpty Reason = "is_empty"

	// TooShort is reported by MinLength when the string is below the bound.
	TooShort Reason = "too_short"

	// TooLong is reported by MaxLength when the string exceeds the bound.
	TooLong Reason = "too_long"

	// MissingNumber is reported by ContainsNumber when no decimal digit is present.
	MissingNumber Reason = "missing_number"

	// MissingLowercase is reported by ContainsLowercase when no lowercase letter is present.
	MissingLowercase Reason = "missing_lowercase"

	// MissingUppercase is reported by ContainsUppercase when no uppercase letter is present.
	MissingUppercase Reason = "missing_uppercase"

	// ForbiddenCharacter is reported by NoForbiddenChars when the string
	// contains a character from the forbidden set.
	ForbiddenCharacter Reason = "forbidden_character"
)

func (r Reason) String() string {
	return string(r)
}
