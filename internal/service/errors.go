package service

import "errors"

// Error kinds. The HTTP layer maps each kind to one status code; every
// domain error returned by this package matches exactly one of them through
// errors.Is.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error is a domain failure whose Message is safe to show to API callers.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	// ErrInvalidCredentials is used for both an unknown email and a wrong
	// password so the response never reveals which one failed.
	ErrInvalidCredentials     = newError(ErrUnauthorized, "invalid credentials")
	ErrInvalidToken           = newError(ErrUnauthorized, "invalid or expired token")
	ErrInvalidCurrentPassword = newError(ErrUnauthorized, "invalid current password")
	ErrSameEmail              = newError(ErrUnauthorized, "new email must differ from the current one")

	ErrEmailInUse = newError(ErrConflict, "email already in use")
	ErrPhoneInUse = newError(ErrConflict, "phone already in use")
	ErrNotDeleted = newError(ErrConflict, "user not deleted")

	ErrUserNotFound = newError(ErrNotFound, "user not found")

	ErrAccessDenied = newError(ErrForbidden, "access denied")

	ErrInvalidRole      = newError(ErrBadRequest, "invalid role")
	ErrUnknownProvider  = newError(ErrBadRequest, "unknown provider")
	ErrInvalidQuery     = newError(ErrBadRequest, "invalid catalog query")
	ErrTokenIssueFailed = errors.New("failed to issue token")
)

// ErrVersionIsNotSpecified is returned by NewHealthService when neither the
// build nor the configuration carries a version.
var ErrVersionIsNotSpecified = errors.New("app version is not specified")
