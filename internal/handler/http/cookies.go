// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	sessionCookieName = "session"
	flashCookieName   = "flash"
)

// setSessionCookie stores the signed session. A remembered session gets a
// persistent cookie; otherwise the cookie ends with the browser session.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if session.Remember {
		cookie.Expires = session.Expires
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	h.clearCookie(w, sessionCookieName)
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// setFlash queues a notice for the next rendered view.
func (h *Handler) setFlash(w http.ResponseWriter, category, message string) {
	payload, err := json.Marshal([]models.Flash{{Category: category, Message: message}})
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// consumeFlashes returns the queued notices and clears them. A cookie that
// cannot be decoded is dropped.
func (h *Handler) consumeFlashes(w http.ResponseWriter, r *http.Request) []models.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	h.clearCookie(w, flashCookieName)

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("dropping malformed flash cookie")
		return nil
	}

	var flashes []models.Flash
	if err = json.Unmarshal(payload, &flashes); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("dropping malformed flash cookie")
		return nil
	}

	return flashes
}
