package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	categories, err := h.services.CategoryService.List(ctx, user.UserID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	notes, err := h.services.NoteService.List(ctx, user.UserID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, models.View{
		Page:  "categories",
		Title: "Categories",
		Data: models.CategoriesPage{
			Categories: categories,
			Notes:      h.noteViews(r, notes),
		},
	})
}

func (h *Handler) createCategoryForm(w http.ResponseWriter, r *http.Request) {
	h.renderCategoryForm(w, r, http.StatusOK, "New category", models.CategoryForm{}, nil)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}

	form := models.CategoryForm{Category: r.PostForm.Get("category")}
	_, err := h.services.CategoryService.Create(r.Context(), currentUser(r).UserID, form.Category)
	if errs, ok := validationErrors(err); ok {
		h.renderCategoryForm(w, r, http.StatusUnprocessableEntity, "New category", form, errs)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/categories")
}

func (h *Handler) modifyCategoryForm(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.Get(r.Context(), currentUser(r).UserID, categoryID)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderCategoryForm(w, r, http.StatusOK, "Rename category", models.CategoryForm{Category: category.Label}, nil)
}

func (h *Handler) modifyCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}

	form := models.CategoryForm{Category: r.PostForm.Get("category")}
	err = h.services.CategoryService.Rename(r.Context(), currentUser(r).UserID, categoryID, form.Category)
	if errs, ok := validationErrors(err); ok {
		h.renderCategoryForm(w, r, http.StatusUnprocessableEntity, "Rename category", form, errs)
		return
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/categories")
}

// deleteCategory removes the category together with its notes.
func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = h.services.CategoryService.Delete(r.Context(), currentUser(r).UserID, categoryID); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/categories")
}

func (h *Handler) renderCategoryForm(w http.ResponseWriter, r *http.Request, status int, title string, form models.CategoryForm, errs models.FormErrors) {
	h.render(w, r, status, models.View{
		Page:   "category_form",
		Title:  title,
		Form:   form,
		Errors: errs,
	})
}
