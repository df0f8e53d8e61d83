package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the media type written by [WriteJSON].
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serializes data and writes it with statusCode.
//
// The body is encoded before any header is written, so a marshaling failure
// still produces a clean 500 Internal Server Error.
//
// Example usage:
//
//	utils.WriteJSON(w, view, http.StatusOK)
//	utils.WriteJSON(w, view, http.StatusUnprocessableEntity)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
