package service

import (
	"context"

	"github.com/MKhiriev/streama/models"
)

// AuthService covers account credentials and session tokens.
type AuthService interface {
	// SignUp creates a user with the default role and preferences.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	// ValidateCredentials returns the identity of the user owning email when
	// password matches. Any mismatch yields ErrInvalidCredentials.
	ValidateCredentials(ctx context.Context, email, password string) (models.Identity, error)
	// IssueToken records the login time and signs a token for identity.
	IssueToken(ctx context.Context, identity models.Identity) (models.Token, error)
	// ValidateToken verifies tokenString and reloads its subject, so tokens
	// of deleted users stop working immediately.
	ValidateToken(ctx context.Context, tokenString string) (models.Identity, error)

	ChangePassword(ctx context.Context, id string, req models.ChangePasswordRequest) (models.User, error)
	ChangeEmail(ctx context.Context, id string, req models.ChangeEmailRequest) (models.User, error)
	AssignRole(ctx context.Context, id string, role models.Role) (models.User, error)
}

// UserService manages user profiles. Ownership rules are enforced here,
// role gates by the HTTP layer.
type UserService interface {
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindOne(ctx context.Context, id string, caller models.Identity) (models.User, error)
	Update(ctx context.Context, id string, caller models.Identity, patch models.UserPatch) (models.User, error)
	Remove(ctx context.Context, id string, soft bool, caller models.Identity) error
	Recover(ctx context.Context, email, password string) (models.User, error)
}

// CatalogService routes catalog queries to a provider adapter.
type CatalogService interface {
	List(ctx context.Context, query models.CatalogQuery) (models.Page, error)
	Details(ctx context.Context, query models.CatalogQuery) (models.Details, error)
	Search(ctx context.Context, query models.CatalogQuery) (models.Page, error)
}

// HealthService reports liveness and build information.
type HealthService interface {
	Health(ctx context.Context) models.HealthResponse
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
