package adapter

import "errors"

// Error kinds of [ProviderError].
var (
	ErrNotFound           = errors.New("provider resource not found")
	ErrUnauthorized       = errors.New("provider unauthorized")
	ErrBadRequest         = errors.New("provider bad request")
	ErrServiceUnavailable = errors.New("provider unavailable")
	// ErrUpstream covers any other upstream failure, including 2xx bodies
	// that cannot be decoded.
	ErrUpstream = errors.New("provider error")
)

var (
	// ErrUnsupportedCategory is returned for media/category pairs a
	// provider has no listing for.
	ErrUnsupportedCategory = errors.New("unsupported category")

	// ErrInvalidBaseURL is returned by constructors for an unusable API URL.
	ErrInvalidBaseURL = errors.New("invalid provider base url")
)

// ProviderError is an upstream failure re-kinded into the local taxonomy.
// Message is safe to show to API callers; the raw upstream body never is.
type ProviderError struct {
	Provider   string
	Kind       error
	Message    string
	StatusCode int

	cause error
}

func (e *ProviderError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the transport cause to errors.Is/As.
func (e *ProviderError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.cause}
}
