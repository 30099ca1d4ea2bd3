package model

import "net/http"

// FailureKind classifies why a download request could not be served.
type FailureKind string

const (
	// FailureInvalidOrigin means the URL is not from a supported platform.
	FailureInvalidOrigin FailureKind = "InvalidOrigin"

	// FailureRateLimited means the admission limiter rejected the caller.
	FailureRateLimited FailureKind = "RateLimited"

	// FailureBlocked means upstream refused with a bot/login/rate-limit
	// signature. Blocked attempts may be retried with a different spec.
	FailureBlocked FailureKind = "ExtractionBlocked"

	// FailureExtraction means upstream failed for a reason that retrying
	// with another spec will not fix.
	FailureExtraction FailureKind = "ExtractionFailed"

	// FailureInternal means an unexpected error or a broken postcondition,
	// such as a missing file after a reported-successful download.
	FailureInternal FailureKind = "InternalFailure"
)

// String returns the string representation of the kind.
func (k FailureKind) String() string {
	return string(k)
}

// Retryable reports whether another attempt spec may get past the failure.
func (k FailureKind) Retryable() bool {
	return k == FailureBlocked
}

// HTTPStatus maps the kind onto the status code returned to the caller.
func (k FailureKind) HTTPStatus() int {
	switch k {
	case FailureInvalidOrigin:
		return http.StatusBadRequest
	case FailureRateLimited:
		return http.StatusTooManyRequests
	case FailureBlocked, FailureExtraction:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Failure is a classified, user-facing request failure. Message is always
// a short single line; internal detail stays in the server logs.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Error satisfies the error interface.
func (f *Failure) Error() string {
	return f.Message
}

// NewFailure builds a Failure of the given kind.
func NewFailure(kind FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}
