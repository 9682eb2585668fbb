package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/streama/internal/logger"
	"github.com/MKhiriev/streama/internal/utils"
	"github.com/MKhiriev/streama/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	identity, err := h.services.AuthService.ValidateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", identity.ID).Msg("user signed in")

	h.setTokenCookie(w, token)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.MessageResponse{Message: "Signed in successfully"}, http.StatusOK)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Message: "Signed out successfully"}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.ChangePasswordRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.ChangePassword(r.Context(), caller.ID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusAccepted)
}

func (h *Handler) changeEmail(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.ChangeEmailRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.ChangeEmail(r.Context(), caller.ID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusAccepted)
}

// assignRole is admin only; the role gate runs before it.
func (h *Handler) assignRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AssignRoleRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	id := chi.URLParam(r, "id")
	user, err := h.services.AuthService.AssignRole(r.Context(), id, req.Role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", id).Str("role", string(req.Role)).Msg("role assigned")
	utils.WriteJSON(w, user, http.StatusAccepted)
}
