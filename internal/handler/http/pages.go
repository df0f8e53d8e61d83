package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, models.View{Page: "index", Title: "Notes"})
}

func (h *Handler) homepage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, models.View{Page: "homepage", Title: "Home"})
}

// healthz reports the running version and whether the database answers.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := models.HealthStatus{
		Status:  "ok",
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}

	code := http.StatusOK
	if err := h.services.AppInfoService.Ping(ctx); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("storage ping failed")
		status.Status = "unavailable"
		code = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, status, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}
