package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/streama/internal/store"
)

// mapStoreError re-kinds repository failures into domain errors. Unknown
// errors are returned unchanged and surface as internal errors.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrEmailInUse, err)
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return fmt.Errorf("%w: %w", ErrPhoneInUse, err)
	}

	return err
}
