package http

import (
	"bytes"
	"html"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Renderer writes a view with the given status code.
type Renderer interface {
	Render(w http.ResponseWriter, status int, view models.View) error
}

// JSONRenderer writes views as JSON documents.
type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, status int, view models.View) error {
	_, err := utils.WriteJSON(w, view, status)
	return err
}

// render completes view with the acting user and pending flashes, then hands
// it to the renderer.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, view models.View) {
	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		view.User = &user
	}
	view.Flashes = append(h.consumeFlashes(w, r), view.Flashes...)

	if err := h.renderer.Render(w, status, view); err != nil {
		logger.FromRequest(r).Err(err).Str("page", view.Page).Msg("error rendering view")
	}
}

// noteViews renders the markdown body of every note. goldmark drops raw HTML
// from the source unless configured otherwise.
func (h *Handler) noteViews(r *http.Request, notes []models.Note) []models.NoteView {
	views := make([]models.NoteView, 0, len(notes))
	for _, note := range notes {
		var (
			buf      bytes.Buffer
			bodyHTML string
		)
		if err := h.markdown.Convert([]byte(note.Body), &buf); err != nil {
			logger.FromRequest(r).Err(err).Int64("note_id", note.NoteID).Msg("error rendering markdown")
			bodyHTML = html.EscapeString(note.Body)
		} else {
			bodyHTML = buf.String()
		}
		views = append(views, models.NoteView{Note: note, BodyHTML: bodyHTML})
	}
	return views
}
