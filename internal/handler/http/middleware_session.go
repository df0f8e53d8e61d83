// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// identify resolves the session cookie into the acting user and stores it in
// the request context. Requests without a valid session continue as
// anonymous; a stale cookie is cleared.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.SessionService.Resolve(r.Context(), cookie.Value)
		switch {
		case err == nil:
			r = r.WithContext(utils.WithUser(r.Context(), user))
		case errors.Is(err, service.ErrInvalidSession):
			logger.FromRequest(r).Debug().Err(err).Msg("clearing invalid session cookie")
			h.clearSessionCookie(w)
		default:
			h.renderError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAuth sends anonymous users to the login form, remembering the
// requested page in the next parameter.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserFromContext(r.Context()); !ok {
			h.setFlash(w, models.FlashInfo, models.MsgLoginRequired)
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// safeNext returns next when it is a local absolute path and "/" otherwise.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") ||
		strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}

	return next
}

// currentUser returns the acting user. Routes behind requireAuth always have
// one.
func currentUser(r *http.Request) models.User {
	user, _ := utils.GetUserFromContext(r.Context())
	return user
}
