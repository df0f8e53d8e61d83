package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

const maxFormSize = 1 << 20

// parseForm reads the URL query and an urlencoded body into r.Form.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %w", errMalformedForm, err)
	}
	return nil
}

// pathID parses the URL parameter name as a positive integer id.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidPathID
	}
	return id, nil
}

// formBool interprets a checkbox value.
func formBool(value string) bool {
	switch strings.ToLower(value) {
	case "on", "y", "yes":
		return true
	}
	b, _ := strconv.ParseBool(value)
	return b
}

// validationErrors extracts the per-field messages of a validation failure.
func validationErrors(err error) (models.FormErrors, bool) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Errors, true
	}
	return nil, false
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusFound)
}
