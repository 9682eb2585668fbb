package utils

import (
	"context"

	"github.com/MKhiriev/streama/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey holds the authenticated caller's models.Identity.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext returns the identity attached by the authentication
// middleware. ok is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.ID == "" {
		return models.Identity{}, false
	}
	return identity, true
}
