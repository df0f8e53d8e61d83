// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

var searchNotes = []models.Note{
	{NoteID: 1, Title: "Groceries for Monday", CategoryID: 1, UserID: 2},
	{NoteID: 2, Title: "Quarterly report", CategoryID: 4, UserID: 2},
	{NoteID: 3, Title: "groceries again", CategoryID: 4, UserID: 2},
}

func newTestSearchSvc(t *testing.T) (SearchService, *mock.MockNoteRepository, *mock.MockCategoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	categories := mock.NewMockCategoryRepository(ctrl)
	return NewSearchService(notes, categories, logger.Nop()), notes, categories
}

func TestSearchService_EmptyQueryDoesNotTouchStore(t *testing.T) {
	svc, _, _ := newTestSearchSvc(t)

	got, err := svc.Search(context.Background(), 2, models.SearchQuery{})
	require.NoError(t, err)
	assert.False(t, got.Queried)
	assert.Empty(t, got.Notes)
}

func TestSearchService_Search(t *testing.T) {
	tests := []struct {
		name    string
		query   models.SearchQuery
		wantIDs []int64
	}{
		{name: "title is case-insensitive", query: models.SearchQuery{Title: "GROCERIES"}, wantIDs: []int64{1, 3}},
		{name: "title substring", query: models.SearchQuery{Title: "report"}, wantIDs: []int64{2}},
		{name: "category only", query: models.SearchQuery{CategoryIDs: []string{"4"}}, wantIDs: []int64{2, 3}},
		{name: "title and category", query: models.SearchQuery{Title: "groceries", CategoryIDs: []string{"4"}}, wantIDs: []int64{3}},
		{name: "title fails first", query: models.SearchQuery{Title: "nothing", CategoryIDs: []string{"1", "4"}}, wantIDs: []int64{}},
		{name: "unknown category", query: models.SearchQuery{CategoryIDs: []string{"77"}}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, notes, categories := newTestSearchSvc(t)

			fixture := append([]models.Note(nil), searchNotes...)
			notes.EXPECT().ListNotes(gomock.Any(), int64(2)).Return(fixture, nil)
			categories.EXPECT().ListCategories(gomock.Any(), int64(2)).Return(annCategories, nil)

			got, err := svc.Search(context.Background(), 2, tt.query)
			require.NoError(t, err)
			assert.True(t, got.Queried)

			ids := make([]int64, 0, len(got.Notes))
			for _, n := range got.Notes {
				ids = append(ids, n.NoteID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchService_ResolvesLabels(t *testing.T) {
	svc, notes, categories := newTestSearchSvc(t)

	notes.EXPECT().ListNotes(gomock.Any(), int64(2)).Return(append([]models.Note(nil), searchNotes...), nil)
	categories.EXPECT().ListCategories(gomock.Any(), int64(2)).Return(annCategories, nil)

	got, err := svc.Search(context.Background(), 2, models.SearchQuery{Title: "monday"})
	require.NoError(t, err)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "Home", got.Notes[0].CategoryLabel)
}

func TestSearchService_StoreFault(t *testing.T) {
	svc, notes, _ := newTestSearchSvc(t)

	notes.EXPECT().ListNotes(gomock.Any(), int64(2)).Return(nil, store.ErrUnavailable)

	_, err := svc.Search(context.Background(), 2, models.SearchQuery{Title: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
