package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

const testToken = "valid-session-token"

var ann = models.User{UserID: 7, Username: "ann"}

// renderedView mirrors models.View with the polymorphic parts left raw.
type renderedView struct {
	Page    string            `json:"page"`
	Title   string            `json:"title"`
	User    *models.User      `json:"user"`
	Flashes []models.Flash    `json:"flashes"`
	Form    json.RawMessage   `json:"form"`
	Errors  models.FormErrors `json:"errors"`
	Data    json.RawMessage   `json:"data"`
}

func newTestHandler(s *testServices) *Handler {
	return NewHandler(s.services(), config.Server{RequestTimeout: time.Second}, logger.Nop())
}

// withSession makes the fake session service resolve testToken to user.
func (s *testServices) withSession(user models.User) *testServices {
	s.session.resolveFn = func(ctx context.Context, token string) (models.User, error) {
		if token == testToken {
			return user, nil
		}
		return models.User{}, service.ErrInvalidSession
	}
	return s
}

func newRequest(method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req
}

func authenticated(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func decodeView(t *testing.T, rr *httptest.ResponseRecorder) renderedView {
	t.Helper()
	var view renderedView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view), rr.Body.String())
	return view
}

func decodeData[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var data T
	require.NoError(t, json.Unmarshal(raw, &data), string(raw))
	return data
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
