package service

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type searchService struct {
	noteRepository     store.NoteRepository
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewSearchService(noteRepository store.NoteRepository, categoryRepository store.CategoryRepository, logger *logger.Logger) SearchService {
	return &searchService{
		noteRepository:     noteRepository,
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// Search filters the user's notes in memory.
//
// An empty query is not executed: the result has Queried == false and the
// store is not touched. Otherwise each note is checked in order and dropped
// by the first failing predicate:
//  1. Title is set and is not a case-insensitive substring of the note title;
//  2. CategoryIDs is set and does not contain the note's category id.
func (s *searchService) Search(ctx context.Context, userID int64, query models.SearchQuery) (models.SearchResult, error) {
	if query.IsEmpty() {
		return models.SearchResult{Queried: false, Notes: []models.Note{}}, nil
	}

	notes, err := s.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*searchService.Search").Msg("error listing notes")
		return models.SearchResult{}, mapStoreError(err)
	}

	categories, err := s.categoryRepository.ListCategories(ctx, userID)
	if err != nil {
		return models.SearchResult{}, mapStoreError(err)
	}

	title := strings.ToLower(query.Title)
	matched := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if title != "" && !strings.Contains(strings.ToLower(note.Title), title) {
			continue
		}
		if len(query.CategoryIDs) > 0 && !slices.Contains(query.CategoryIDs, strconv.FormatInt(note.CategoryID, 10)) {
			continue
		}
		matched = append(matched, note)
	}

	return models.SearchResult{Queried: true, Notes: resolveLabels(matched, categories)}, nil
}
