package http

import (
	"net/http"

	"github.com/MKhiriev/streama/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HealthService.Health(r.Context()), http.StatusOK)
}
