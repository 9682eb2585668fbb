package http

import (
	"net/http"

	"github.com/MKhiriev/streama/models"
)

// setTokenCookie stores the signed token in the session cookie.
func (h *Handler) setTokenCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.settings.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: h.settings.cookieSameSite,
	})
}

// clearTokenCookie expires the session cookie on the client.
func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: h.settings.cookieSameSite,
	})
}
