package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
)

// decodeAndValidate reads the JSON body of r into dst and validates it.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return h.validator.Validate(r.Context(), dst)
}

// identity returns the caller attached by the auth middleware.
func identity(r *http.Request) (models.Identity, error) {
	id, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrMissingToken
	}
	return id, nil
}
