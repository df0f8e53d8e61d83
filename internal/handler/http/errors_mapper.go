package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:           http.StatusUnprocessableEntity,
	service.ErrDuplicateUsername:    http.StatusConflict,
	service.ErrAuthenticationFailed: http.StatusUnauthorized,
	service.ErrNotFound:             http.StatusNotFound,
	service.ErrForbidden:            http.StatusForbidden,
	service.ErrUnavailable:          http.StatusServiceUnavailable,

	errInvalidPathID: http.StatusNotFound,
	errMalformedForm: http.StatusBadRequest,
	errRouteNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// renderError renders the fallback error view matching err.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.render(w, r, status, models.View{
		Page:  "error",
		Title: http.StatusText(status),
		Data: models.ErrorPage{
			Status:  status,
			Message: http.StatusText(status),
		},
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, errRouteNotFound)
}
