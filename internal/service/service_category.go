package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	transactor         store.Transactor

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, transactor store.Transactor, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		transactor:         transactor,
		logger:             logger,
	}
}

// List returns the user's categories; none is an empty slice.
func (s *categoryService) List(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return categories, nil
}

func (s *categoryService) Create(ctx context.Context, userID int64, label string) (models.Category, error) {
	label, err := validateLabel(label)
	if err != nil {
		return models.Category{}, err
	}

	category, err := s.categoryRepository.CreateCategory(ctx, models.Category{Label: label, UserID: userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryService.Create").Msg("error creating category")
		return models.Category{}, mapStoreError(err)
	}

	return category, nil
}

// Get returns the category if userID owns it: ErrNotFound when it does not
// exist, ErrForbidden when it belongs to someone else.
func (s *categoryService) Get(ctx context.Context, userID, categoryID int64) (models.Category, error) {
	category, err := s.categoryRepository.GetCategory(ctx, categoryID)
	if err != nil {
		return models.Category{}, mapStoreError(err)
	}

	if category.UserID != userID {
		logger.FromContext(ctx).Warn().
			Int64("user_id", userID).
			Int64("category_id", categoryID).
			Msg("attempt to access a different user's category")
		return models.Category{}, ErrForbidden
	}

	return category, nil
}

func (s *categoryService) Rename(ctx context.Context, userID, categoryID int64, label string) error {
	category, err := s.Get(ctx, userID, categoryID)
	if err != nil {
		return err
	}

	if category.Label, err = validateLabel(label); err != nil {
		return err
	}

	if err = s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return mapStoreError(err)
	}

	return nil
}

// Delete removes the category and every note of userID filed under it.
// Notes are deleted one by one through the note repository, then the
// category; all of it commits or rolls back together.
func (s *categoryService) Delete(ctx context.Context, userID, categoryID int64) error {
	if _, err := s.Get(ctx, userID, categoryID); err != nil {
		return err
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		notes, err := repos.Notes.ListNotesByCategory(ctx, userID, categoryID)
		if err != nil {
			return err
		}

		for _, note := range notes {
			if err = repos.Notes.DeleteNote(ctx, userID, note.NoteID); err != nil {
				return err
			}
		}

		return repos.Categories.DeleteCategory(ctx, userID, categoryID)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*categoryService.Delete").
			Int64("category_id", categoryID).
			Msg("cascade delete rolled back")
		return mapStoreError(err)
	}

	return nil
}

func validateLabel(label string) (string, error) {
	form := models.CategoryForm{Category: label}
	if errs := form.Validate(); errs.HasErrors() {
		return "", newValidationError(errs)
	}
	return strings.TrimSpace(label), nil
}
