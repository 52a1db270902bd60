package http

import (
	"net/http"

	"github.com/MKhiriev/resume-keeper/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.HealthService.Status(r.Context()), http.StatusOK)
}
