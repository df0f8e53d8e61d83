package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Pages under the authenticated group redirect
// anonymous users to /login.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.identify)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/homepage/", h.homepage)
		r.Post("/homepage/", h.homepage)

		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/register", h.registrationForm)
		r.Post("/register", h.register)

		r.Get("/healthz", h.healthz)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/notes", h.listNotes)
		r.Post("/notes", h.listNotes)
		r.Get("/create_note/{category_id}", h.createNoteForm)
		r.Post("/create_note/{category_id}", h.createNote)
		r.Get("/update_note/{id}", h.updateNoteForm)
		r.Post("/update_note/{id}", h.updateNote)
		r.Get("/delete_note/{id}", h.deleteNote)

		r.Get("/categories", h.listCategories)
		r.Get("/create_category", h.createCategoryForm)
		r.Post("/create_category", h.createCategory)
		r.Get("/modify_category/{id}", h.modifyCategoryForm)
		r.Post("/modify_category/{id}", h.modifyCategory)
		r.Get("/delete_category/{id}", h.deleteCategory)

		r.Get("/search", h.search)
		r.Post("/search", h.search)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))

	return router
}
