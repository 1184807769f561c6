package validator

import "errors"

var (
	// ErrValidatorFailed is returned when the struct validator itself fails,
	// e.g. on a misconfigured validation tag, rather than the value being invalid.
	ErrValidatorFailed = errors.New("validator failed")
)
