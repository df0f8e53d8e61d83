// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// CheckHTTPMethod returns an [http.HandlerFunc] meant for
// [chi.Mux.MethodNotAllowed].
//
// chi calls it only for a known path requested with a method the path does
// not serve. The request is answered by notFound instead of chi's 405, so
// unsupported methods look exactly like unknown paths.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))
func CheckHTTPMethod(notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not served on this path")
		notFound(w, r)
	}
}
