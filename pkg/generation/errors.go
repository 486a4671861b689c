package generation

import "errors"

var (
	// ErrInvalidRequest means the caller passed a bad email type or
	// non-positive counts. Not retryable; the input must be fixed first.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrProviderNotConfigured means the requested provider has no usable
	// API key. Not retryable; a key must be configured or another provider
	// selected.
	ErrProviderNotConfigured = errors.New("provider is not configured")

	// ErrRequestFailed means the provider could not be reached or replied
	// with an error status. Retryable.
	ErrRequestFailed = errors.New("generation request failed")

	// ErrTimeout means the provider call exceeded the deadline. Retryable.
	ErrTimeout = errors.New("generation timed out")

	// ErrInvalidResponse means the provider replied successfully but the
	// payload failed schema validation. Retryable, often against another
	// provider with the same prompt.
	ErrInvalidResponse = errors.New("invalid generation response")
)

// IsRetryable reports whether a manual retry of the same request can
// plausibly succeed without the caller changing anything.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRequestFailed) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrInvalidResponse)
}
