package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService registers accounts and verifies credentials.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	Verify(ctx context.Context, username, password string) (models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// SessionService issues and resolves signed session tokens.
type SessionService interface {
	Issue(ctx context.Context, user models.User, remember bool) (models.Session, error)
	Resolve(ctx context.Context, token string) (models.User, error)
}

// CategoryService manages the categories of the acting user. Every method
// takes the acting user's id and never touches another user's rows.
type CategoryService interface {
	List(ctx context.Context, userID int64) ([]models.Category, error)
	Create(ctx context.Context, userID int64, label string) (models.Category, error)
	Get(ctx context.Context, userID, categoryID int64) (models.Category, error)
	Rename(ctx context.Context, userID, categoryID int64, label string) error
	Delete(ctx context.Context, userID, categoryID int64) error
}

// NoteService manages the notes of the acting user.
type NoteService interface {
	List(ctx context.Context, userID int64) ([]models.Note, error)
	Create(ctx context.Context, userID int64, note models.Note) (models.Note, error)
	Get(ctx context.Context, userID, noteID int64) (models.Note, error)
	Update(ctx context.Context, userID int64, note models.Note) error
	Delete(ctx context.Context, userID, noteID int64) error
	CategoryChoices(ctx context.Context, userID int64) ([]models.Category, error)
}

// SearchService filters the notes of the acting user.
type SearchService interface {
	Search(ctx context.Context, userID int64, query models.SearchQuery) (models.SearchResult, error)
}

// AppInfoService reports the running version and storage health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}

// Pinger is implemented by the storage layer.
type Pinger interface {
	Ping(ctx context.Context) error
}
