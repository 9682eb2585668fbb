package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/streama/internal/adapter"
	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/service"
	"github.com/MKhiriev/streama/internal/store"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/internal/validators"
	"github.com/MKhiriev/streama/models"
)

// internalErrorMessage is the public text of every 500 without a known kind.
const internalErrorMessage = "Internal server error"

// errorStatusMap lists every sentinel with a fixed status. An error never
// matches two entries with different statuses.
var errorStatusMap = map[error]int{
	service.ErrBadRequest:   http.StatusBadRequest,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrForbidden:    http.StatusForbidden,
	service.ErrNotFound:     http.StatusNotFound,
	service.ErrConflict:     http.StatusConflict,

	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnauthorized:        http.StatusUnauthorized,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrServiceUnavailable:  http.StatusServiceUnavailable,
	adapter.ErrUnsupportedCategory: http.StatusBadRequest,
	adapter.ErrUpstream:            http.StatusInternalServerError,

	validators.ErrValidation: http.StatusBadRequest,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrPhoneAlreadyExists: http.StatusConflict,

	utils.ErrEmptyBody:                  http.StatusBadRequest,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	ErrMissingToken:     http.StatusUnauthorized,
	ErrInsufficientRole: http.StatusForbidden,
	ErrTooManyRequests:  http.StatusTooManyRequests,
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrRouteNotFound:    http.StatusNotFound,
}

// statusFromError returns the status of the first sentinel err matches and
// that sentinel. Unknown errors are 500 with a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// publicMessage picks the text shown to API callers: the message of a typed
// domain error if err carries one, otherwise the matched sentinel for
// client errors and a fixed text for everything else.
func publicMessage(err error, status int, target error) string {
	var validationErr *validators.ValidationError
	var domainErr *service.Error
	var providerErr *adapter.ProviderError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &domainErr):
		return domainErr.Message
	case errors.As(err, &providerErr):
		return providerErr.Message
	case target != nil && status < http.StatusInternalServerError:
		return target.Error()
	default:
		return internalErrorMessage
	}
}

// writeError answers r with the error envelope for err.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.writeErrorWithTrace(w, r, err, "")
}

// writeErrorWithTrace is writeError with an extra goroutine trace appended
// to the stack field.
func (h *Handler) writeErrorWithTrace(w http.ResponseWriter, r *http.Request, err error, trace string) {
	log := logger.FromRequest(r)

	status, target := statusFromError(err)
	resp := models.ErrorResponse{
		Code:    status,
		Status:  models.StatusFail,
		Message: publicMessage(err, status, target),
	}
	if status >= http.StatusInternalServerError {
		resp.Status = models.StatusError
		log.Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request rejected")
	}

	if !h.settings.production {
		resp.Stack = err.Error()
		if trace != "" {
			resp.Stack += "\n\n" + trace
		}
	}

	if _, wErr := utils.WriteJSON(w, resp, status); wErr != nil {
		log.Err(wErr).Str("func", "*Handler.writeError").Msg("failed to write error response")
	}
}
