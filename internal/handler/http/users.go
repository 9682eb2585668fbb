package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/internal/validators"
	"github.com/MKhiriev/streama/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("created_user_id", user.ID).Msg("user created")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) findAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.FindAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) findUser(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.FindOne(r.Context(), chi.URLParam(r, "id"), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var patch models.UserPatch
	if err := h.decodeAndValidate(r, &patch); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Update(r.Context(), chi.URLParam(r, "id"), caller, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusAccepted)
}

// removeUser deletes permanently unless ?soft=true is given.
func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	soft := false
	if raw := r.URL.Query().Get("soft"); raw != "" {
		soft, err = strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, r, invalidParam("soft", "must be a boolean"))
			return
		}
	}

	id := chi.URLParam(r, "id")
	if err := h.services.UserService.Remove(r.Context(), id, soft, caller); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("removed_user_id", id).Bool("soft", soft).Msg("user removed")
	w.WriteHeader(http.StatusNoContent)
}

// recoverUser is public: the caller proves ownership with the credentials
// of the soft-deleted account.
func (h *Handler) recoverUser(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.Recover(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user recovered")
	utils.WriteJSON(w, user, http.StatusOK)
}

// invalidParam reports a malformed query parameter in the validation
// error shape.
func invalidParam(name, message string) error {
	return &validators.ValidationError{Fields: []validators.FieldError{{Field: name, Message: message}}}
}
