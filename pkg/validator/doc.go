// Package validator builds reusable text validators by chaining the atomic
// checks from pkg/rules over a single target string.
//
// A Builder wraps one immutable string and accumulates failure reasons as
// checks are chained. Every chaining method evaluates its check immediately
// and returns the same builder, so call order determines the order of the
// reported reasons. Validate finalizes nothing: the result is already
// computed, and calling it repeatedly returns the same outcome.
//
//	valid, issues := validator.New("Abc12345").
//	    MinLength(8).
//	    ContainsLowercase().
//	    ContainsUppercase().
//	    ContainsNumber().
//	    Validate()
//
// A Director packages a fixed, named sequence of checks so field-type
// policies stay out of calling code. Directors hold no state and may be
// applied to any number of builders:
//
//	_, issues := validator.Username(validator.New(name)).Validate()
//
// Builders are single-use: create a fresh one per string per validation run.
// A builder must not be shared between goroutines.
package validator
