// Package rules provides the atomic text checks used by the formkit
// validation engine.
//
// Every check is expressed as a Rule value pairing a boolean Check function
// with the Reason reported when the check fails. Rules never panic and never
// return errors: a validation failure is ordinary data, not a fault. The
// Apply helper evaluates a sequence of rules and collects the reasons of the
// failed ones in call order, which keeps failure ordering deterministic for
// tests and UI rendering.
//
// Length-based checks (NotEmpty, MinLength, MaxLength) count grapheme
// clusters rather than bytes or runes, so a combining sequence such as
// "é" counts as a single character. Character-class checks classify
// runes with the unicode package and therefore accept non-ASCII digits,
// uppercase and lowercase letters.
//
// Usage:
//
//	failed := rules.Apply(
//	    rules.NotEmpty(name),
//	    rules.MaxLength(name, 20),
//	)
//	if len(failed) > 0 {
//	    // failed holds the reasons in the order the rules were given
//	}
//
// The package is stateless and goroutine-safe; all helpers are cheap,
// allocation-light string scans.
package rules
