package models

// Flash categories.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashDanger  = "danger"
)

// Flash is a one-time notice shown with the next rendered view.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// View is the presentation-neutral model of a rendered page. A renderer turns
// it into the response body; templates are not part of this service.
type View struct {
	Page    string     `json:"page"`
	Title   string     `json:"title,omitempty"`
	User    *User      `json:"user,omitempty"`
	Flashes []Flash    `json:"flashes,omitempty"`
	Form    any        `json:"form,omitempty"`
	Errors  FormErrors `json:"errors,omitempty"`
	Data    any        `json:"data,omitempty"`
}

// NoteView is a note prepared for display; BodyHTML is the body rendered
// from markdown.
type NoteView struct {
	Note
	BodyHTML string `json:"body_html"`
}

// NotesPage is the data of the note listing.
type NotesPage struct {
	Notes []NoteView `json:"notes"`
}

// CategoriesPage is the data of the category listing.
type CategoriesPage struct {
	Categories []Category `json:"categories"`
	Notes      []NoteView `json:"notes"`
}

// SearchPage is the data of the search page.
type SearchPage struct {
	Queried bool       `json:"queried"`
	Notes   []NoteView `json:"notes"`
}

// ErrorPage is the data of the fallback error views.
type ErrorPage struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// LoginPage is the data of the login form. Next is the local path the user
// is sent to after a successful login.
type LoginPage struct {
	Next string `json:"next,omitempty"`
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
