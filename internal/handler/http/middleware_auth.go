package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces token authentication.
//
// The token is read from the session cookie, falling back to an
// "Authorization: Bearer" header. The request is rejected with 401 when no
// token is present or [service.AuthService.ValidateToken] refuses it. On
// success the caller's identity is stored in the request context and the
// request logger gains a user_id field.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := h.tokenFromRequest(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		identity, err := h.services.AuthService.ValidateToken(r.Context(), tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, withIdentity(r, identity))
	})
}

// optionalAuth attaches the caller's identity when the request carries a
// valid token. Missing or rejected tokens let the request through
// anonymously.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := h.tokenFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.services.AuthService.ValidateToken(r.Context(), tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.optionalAuth").Msg("continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, withIdentity(r, identity))
	})
}

// requireRole lets through authenticated callers holding one of roles. It
// must run after auth: a request without identity is answered with 401,
// a caller with any other role with 403.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrMissingToken)
				return
			}
			if !slices.Contains(roles, identity.Role) {
				h.writeError(w, r, ErrInsufficientRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// tokenFromRequest returns the session cookie value or, without one, the
// bearer token of the "Authorization" header.
func (h *Handler) tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(h.settings.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}

	return utils.ParseBearerToken(header)
}

func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := utils.WithIdentity(r.Context(), identity)

	log := logger.FromContext(ctx).GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("user_id", identity.ID)
	})

	return r.WithContext(log.WithContext(ctx))
}
