package policy

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the policy config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)
