package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user row matches the lookup, or a
	// mutation targets a row that does not exist (or is in the wrong
	// soft-delete state for the operation).
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when an insert or update violates
	// the users_email_key constraint. Soft-deleted rows still hold their email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPhoneAlreadyExists is returned when an insert or update violates
	// the users_phone_key constraint.
	ErrPhoneAlreadyExists = errors.New("phone already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a models.User fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrHashingPassword is returned when the password hasher fails before
	// a write.
	ErrHashingPassword = errors.New("failed to hash password")
)
