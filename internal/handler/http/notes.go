// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)

	notes, err := h.services.NoteService.List(r.Context(), user.UserID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, models.View{
		Page:  "notes",
		Title: "Notes",
		Data:  models.NotesPage{Notes: h.noteViews(r, notes)},
	})
}

// noteChoices loads the categories a note can be filed under. A user with no
// categories is sent to the category form and ok is false.
func (h *Handler) noteChoices(w http.ResponseWriter, r *http.Request, userID int64) (choices []models.Category, ok bool) {
	choices, err := h.services.NoteService.CategoryChoices(r.Context(), userID)
	if err != nil {
		h.renderError(w, r, err)
		return nil, false
	}
	if len(choices) == 0 {
		h.redirectToCategoryForm(w, r)
		return nil, false
	}
	return choices, true
}

func (h *Handler) redirectToCategoryForm(w http.ResponseWriter, r *http.Request) {
	h.setFlash(w, models.FlashInfo, models.MsgCreateCategoryFirst)
	redirect(w, r, "/create_category")
}

func (h *Handler) createNoteForm(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "category_id")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	choices, ok := h.noteChoices(w, r, currentUser(r).UserID)
	if !ok {
		return
	}

	form := models.NoteForm{Choices: choices}
	for _, c := range choices {
		if c.CategoryID == categoryID {
			form.Category = c.IDString()
		}
	}

	h.renderNoteForm(w, r, http.StatusOK, "New note", form, nil)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	if _, err := pathID(r, "category_id"); err != nil {
		h.renderError(w, r, err)
		return
	}
	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}

	choices, ok := h.noteChoices(w, r, user.UserID)
	if !ok {
		return
	}

	form := noteFormFromRequest(r, choices)
	_, err := h.services.NoteService.Create(ctx, user.UserID, noteFromForm(form))
	if errs, ok := validationErrors(err); ok {
		h.renderNoteForm(w, r, http.StatusUnprocessableEntity, "New note", form, errs)
		return
	}
	if errors.Is(err, service.ErrNoCategoriesExist) {
		h.redirectToCategoryForm(w, r)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/notes")
}

func (h *Handler) updateNoteForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	noteID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Get(ctx, user.UserID, noteID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	choices, err := h.services.NoteService.CategoryChoices(ctx, user.UserID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form := models.NoteForm{
		Title:    note.Title,
		Text:     note.Body,
		Category: strconv.FormatInt(note.CategoryID, 10),
		Choices:  choices,
	}
	h.renderNoteForm(w, r, http.StatusOK, "Edit note", form, nil)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	noteID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}

	choices, err := h.services.NoteService.CategoryChoices(ctx, user.UserID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	form := noteFormFromRequest(r, choices)
	note := noteFromForm(form)
	note.NoteID = noteID

	err = h.services.NoteService.Update(ctx, user.UserID, note)
	if errs, ok := validationErrors(err); ok {
		h.renderNoteForm(w, r, http.StatusUnprocessableEntity, "Edit note", form, errs)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/notes")
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), currentUser(r).UserID, noteID); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/notes")
}

func (h *Handler) renderNoteForm(w http.ResponseWriter, r *http.Request, status int, title string, form models.NoteForm, errs models.FormErrors) {
	h.render(w, r, status, models.View{
		Page:   "note_form",
		Title:  title,
		Form:   form,
		Errors: errs,
	})
}

func noteFormFromRequest(r *http.Request, choices []models.Category) models.NoteForm {
	return models.NoteForm{
		Title:    r.PostForm.Get("title"),
		Text:     r.PostForm.Get("text"),
		Category: r.PostForm.Get("category"),
		Choices:  choices,
	}
}

// noteFromForm converts the submitted form. An unparsable category becomes
// id 0, which is never a valid choice.
func noteFromForm(form models.NoteForm) models.Note {
	categoryID, _ := strconv.ParseInt(form.Category, 10, 64)
	return models.Note{
		Title:      form.Title,
		Body:       form.Text,
		CategoryID: categoryID,
	}
}
