package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	noteRepository     store.NoteRepository
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, categoryRepository store.CategoryRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository:     noteRepository,
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// List returns every note of userID with CategoryLabel resolved.
func (s *noteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	return resolveLabels(notes, categories), nil
}

// Create files a new note. A user without categories gets
// ErrNoCategoriesExist; a category outside the user's own set is a
// validation failure.
func (s *noteService) Create(ctx context.Context, userID int64, note models.Note) (models.Note, error) {
	categories, err := s.CategoryChoices(ctx, userID)
	if err != nil {
		return models.Note{}, err
	}
	if len(categories) == 0 {
		return models.Note{}, ErrNoCategoriesExist
	}

	if err = validateNote(note, categories); err != nil {
		return models.Note{}, err
	}

	note.UserID = userID
	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Create").Msg("error creating note")
		return models.Note{}, mapStoreError(err)
	}

	created.CategoryLabel = labelOf(created.CategoryID, categories)
	return created, nil
}

// Get returns the note if userID owns it.
func (s *noteService) Get(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	if note.UserID != userID {
		logger.FromContext(ctx).Warn().
			Int64("user_id", userID).
			Int64("note_id", noteID).
			Msg("attempt to access a different user's note")
		return models.Note{}, ErrForbidden
	}

	return note, nil
}

// Update overwrites title, body and category of an owned note.
func (s *noteService) Update(ctx context.Context, userID int64, note models.Note) error {
	if _, err := s.Get(ctx, userID, note.NoteID); err != nil {
		return err
	}

	categories, err := s.CategoryChoices(ctx, userID)
	if err != nil {
		return err
	}
	if err = validateNote(note, categories); err != nil {
		return err
	}

	note.UserID = userID
	if err = s.noteRepository.UpdateNote(ctx, note); err != nil {
		return mapStoreError(err)
	}

	return nil
}

func (s *noteService) Delete(ctx context.Context, userID, noteID int64) error {
	if _, err := s.Get(ctx, userID, noteID); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return mapStoreError(err)
	}

	return nil
}

// CategoryChoices returns the categories a note of userID may be filed
// under.
func (s *noteService) CategoryChoices(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return categories, nil
}

func validateNote(note models.Note, choices []models.Category) error {
	form := models.NoteForm{
		Title:    note.Title,
		Text:     note.Body,
		Category: strconv.FormatInt(note.CategoryID, 10),
		Choices:  choices,
	}
	if errs := form.Validate(); errs.HasErrors() {
		return newValidationError(errs)
	}
	return nil
}

// resolveLabels fills CategoryLabel from categories. Unknown ids keep an
// empty label.
func resolveLabels(notes []models.Note, categories []models.Category) []models.Note {
	labels := make(map[int64]string, len(categories))
	for _, c := range categories {
		labels[c.CategoryID] = c.Label
	}

	for i := range notes {
		notes[i].CategoryLabel = labels[notes[i].CategoryID]
	}
	return notes
}

func labelOf(categoryID int64, categories []models.Category) string {
	for _, c := range categories {
		if c.CategoryID == categoryID {
			return c.Label
		}
	}
	return ""
}
