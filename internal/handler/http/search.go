package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/models"
)

// search accepts the filters both as query parameters and as a posted form.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}

	choices, err := h.services.NoteService.CategoryChoices(ctx, user.UserID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form := models.SearchForm{
		Title:      r.Form.Get("title"),
		Categories: r.Form["categories"],
		Choices:    choices,
	}

	result, err := h.services.SearchService.Search(ctx, user.UserID, form.Query())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, models.View{
		Page:  "search",
		Title: "Search",
		Form:  form,
		Data: models.SearchPage{
			Queried: result.Queried,
			Notes:   h.noteViews(r, result.Notes),
		},
	})
}
