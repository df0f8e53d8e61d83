package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

var errPanicRecovered = errors.New("panic recovered")

// withRecovery turns a handler panic into the 500 error view.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			h.renderError(w, r, errPanicRecovered)
		}()

		next.ServeHTTP(w, r)
	})
}
