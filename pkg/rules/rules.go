package rules

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Rule represents a single validation check over one string.
type Rule struct {
	Check  func() bool
	Reason Reason
}

// Apply evaluates rules in order and returns the reasons of those that
// failed, preserving call order. A nil result means every rule passed.
func Apply(rules ...Rule) []Reason {
	var failed []Reason
	for _, rule := range rules {
		if !rule.Check() {
			failed = append(failed, rule.Reason)
		}
	}
	return failed
}

// Length returns the number of user-perceived characters in s, counted as
// grapheme clusters. "é" composed from 'e' plus a combining accent counts
// as one.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// NotEmpty checks that the string contains at least one character.
func NotEmpty(value string) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) > 0
		},
		Reason: IsEmpty,
	}
}

// MinLength checks that the string is at least min characters long.
// Negative bounds are a caller contract violation and pass trivially.
func MinLength(value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) >= min
		},
		Reason: TooShort,
	}
}

// MaxLength checks that the string is at most max characters long.
func MaxLength(value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) <= max
		},
		Reason: TooLong,
	}
}

// ContainsNumber checks that at least one character is a decimal digit.
func ContainsNumber(value string) Rule {
	return Rule{
		Check: func() bool {
			return containsClass(value, unicode.IsDigit)
		},
		Reason: MissingNumber,
	}
}

// ContainsUppercase checks that at least one character is an uppercase letter.
func ContainsUppercase(value string) Rule {
	return Rule{
		Check: func() bool {
			return containsClass(value, unicode.IsUpper)
		},
		Reason: MissingUppercase,
	}
}

// ContainsLowercase checks that at least one character is a lowercase letter.
func ContainsLowercase(value string) Rule {
	return Rule{
		Check: func() bool {
			return containsClass(value, unicode.IsLower)
		},
		Reason: MissingLowercase,
	}
}

// NoForbiddenChars checks that no character of the string belongs to the
// forbidden set. An empty set passes for any string.
func NoForbiddenChars(value, forbidden string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(value, forbidden)
		},
		Reason: ForbiddenCharacter,
	}
}

func containsClass(s string, is func(rune) bool) bool {
	for _, r := range s {
		if is(r) {
			return true
		}
	}
	return false
}
