// Package formkit provides a small, composable rule engine for validating
// form input in Go.
//
// The module is organized bottom-up:
//
//   - pkg/rules     – atomic text checks, each reporting a typed failure reason
//   - pkg/validator – fluent builder composing checks over one string, plus
//     named Director recipes (username, password)
//   - pkg/form      – the validation pipeline: ordered field set, mandatory
//     versus optional partitioning, aggregate ProcessResult
//   - pkg/policy    – field classification: which fields are mandatory and
//     which recipe applies, with env-configurable bounds
//   - pkg/sanitizer – opt-in input normalization helpers
//   - pkg/logger    – slog factory for processing diagnostics
//
// Validation failures are data, never errors: every check yields a
// rules.Reason and the pipeline always returns a complete result.
//
// Basic usage:
//
//	cfg, err := policy.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	p := policy.New(cfg)
//
//	pipeline := form.NewPipeline(form.WithFields(
//	    p.Classify("username", rawUsername),
//	    p.Classify("password", rawPassword),
//	    p.Classify("bio", rawBio), // no recipe registered: carried as optional
//	))
//
//	result := pipeline.Process()
//	if !result.Valid {
//	    // result.InvalidFields holds (fieldID, reasons) in scan order
//	}
package formkit
