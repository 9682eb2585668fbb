package store

import (
	"context"
	"time"

	"github.com/MKhiriev/streama/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists user accounts in the users table.
//
// Lookups exclude soft-deleted rows and the password hash unless asked for
// through models.FindOptions. Create and Save hash a plaintext password
// before it reaches the database and never re-hash an existing hash.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string, opts models.FindOptions) (models.User, error)
	FindByID(ctx context.Context, id string, opts models.FindOptions) (models.User, error)
	// FindAll returns every non-deleted user ordered by creation time.
	FindAll(ctx context.Context) ([]models.User, error)

	Create(ctx context.Context, user models.User) (models.User, error)
	// Save writes every mutable column of user. The password column is
	// written only when user.Password is non-empty.
	Save(ctx context.Context, user models.User) (models.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	SoftDelete(ctx context.Context, id string) error
	// Recover clears deleted_at of a soft-deleted row.
	Recover(ctx context.Context, id string) (models.User, error)
	HardDelete(ctx context.Context, id string) error
}
