package llm

import "errors"

// Sentinel errors for provider adapters. The orchestrator maps these onto
// its user-facing taxonomy, so adapters must never collapse them into a
// generic error.
var (
	// ErrAPIKeyRequired means the selected provider has no usable key.
	ErrAPIKeyRequired = errors.New("API key is required")

	// ErrUnknownProvider means the provider name is not in the catalog.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrRequestFailed wraps HTTP-level and upstream-status failures.
	// The upstream error message is surfaced verbatim where available.
	ErrRequestFailed = errors.New("provider request failed")

	// ErrMalformedResponse means the provider replied successfully but the
	// payload was not the valid JSON the request demanded.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrEmptyCompletion means the provider returned no content blocks or
	// choices at all.
	ErrEmptyCompletion = errors.New("provider returned an empty completion")
)
