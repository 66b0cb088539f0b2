// Package sanitizer provides small, stateless helpers for normalizing raw
// form input before it reaches validation.
//
// All helpers are focused string transformations that can be freely
// combined. The higher-order Apply and Compose helpers build reusable
// sanitization pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// Sanitization is always opt-in: the validation engine checks exactly the
// string it is given.
package sanitizer
