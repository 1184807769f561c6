package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrEmptyBody            = errors.New("empty request body")
	ErrFailedToReadBody     = errors.New("failed to read request body")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrRequestCanceled      = errors.New("request canceled")
)
