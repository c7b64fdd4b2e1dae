package security

import "errors"

// ErrorKind labels a validation failure so the web layer can pick a status.
type ErrorKind string

const (
	KindMissingField  ErrorKind = "missing_field"
	KindTooLong       ErrorKind = "too_long"
	KindUnsafeContent ErrorKind = "unsafe_content"
)

// ValidationError is a typed, recoverable validation failure. It is always
// returned as a value, never panicked.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Sentinel errors for the request-defense checks. The limiter itself
// returns booleans; these exist for callers that compose the pipeline
// outside HTTP and need a typed outcome.
var (
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrBanned      = errors.New("client is banned")
)
