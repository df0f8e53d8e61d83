package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

var annCategories = []models.Category{
	{CategoryID: 1, Label: "Home", UserID: 2},
	{CategoryID: 4, Label: "Work", UserID: 2},
}

func newTestNoteSvc(t *testing.T) (NoteService, *mock.MockNoteRepository, *mock.MockCategoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	categories := mock.NewMockCategoryRepository(ctrl)
	return NewNoteService(notes, categories, logger.Nop()), notes, categories
}

func TestNoteService_List_ResolvesLabels(t *testing.T) {
	svc, notes, categories := newTestNoteSvc(t)

	notes.EXPECT().ListNotes(gomock.Any(), int64(2)).Return([]models.Note{
		{NoteID: 1, CategoryID: 4, UserID: 2},
		{NoteID: 2, CategoryID: 99, UserID: 2},
	}, nil)
	categories.EXPECT().ListCategories(gomock.Any(), int64(2)).Return(annCategories, nil)

	got, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Work", got[0].CategoryLabel)
	assert.Empty(t, got[1].CategoryLabel)
}

func TestNoteService_List_Fault(t *testing.T) {
	svc, notes, _ := newTestNoteSvc(t)

	notes.EXPECT().ListNotes(gomock.Any(), int64(2)).Return(nil, store.ErrUnavailable)

	_, err := svc.List(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNoteService_Create(t *testing.T) {
	svc, notes, categories := newTestNoteSvc(t)

	categories.EXPECT().ListCategories(gomock.Any(), int64(2)).Return(annCategories, nil)
	notes.EXPECT().
		CreateNote(gomock.Any(), models.Note{Title: "Milk", Body: "2l", CategoryID: 1, UserID: 2}).
		Return(models.Note{NoteID: 8, Title: "Milk", Body: "2l", CategoryID: 1, UserID: 2}, nil)

	got, err := svc.Create(context.Background(), 2, models.Note{Title: "Milk", Body: "2l", CategoryID: 1, UserID: 99})
	require.NoError(t, err)
	assert.Equal(t, int64(8), got.NoteID)
	assert.Equal(t, "Home", got.CategoryLabel)
}

func TestNoteService_Create_NoCategories(t *testing.T) {
	svc, _, categories := newTestNoteSvc(t)

	categories.EXPECT().ListCategories(gomock.Any(), int64(2)).Return([]models.Category{}, nil)

	_, err := svc.Create(context.Background(), 2, models.Note{Title: "Milk", Body: "2l", CategoryID: 1})
	assert.ErrorIs(t, err, ErrNoCategoriesExist)
}

func TestNoteService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		note      models.Note
		wantField string
		wantMsg   string
	}{
		{name: "missing title", note: models.Note{Body: "b", CategoryID: 1}, wantField: "title", wantMsg: models.MsgFieldRequired},
		{name: "missing body", note: models.Note{Title: "t", CategoryID: 1}, wantField: "text", wantMsg: models.MsgFieldRequired},
		{name: "category of another user", note: models.Note{Title: "t", Body: "b", CategoryID: 77}, wantField: "category", wantMsg: models.MsgNotAValidChoice},
		{
			name:      "title too long",
			note:      models.Note{Title: strings.Repeat("t", models.MaxTitleLength+1), Body: "b", CategoryID: 1},
			wantField: "title",
			wantMsg:   fmt.Sprintf(models.MsgTooLong, models.MaxTitleLength),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, categories := newTestNoteSvc(t)
			categories.EXPECT().ListCategories(gomock.Any(), int64(2)).Return(annCategories, nil)

			_, err := svc.Create(context.Background(), 2, tt.note)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []string{tt.wantMsg}, verr.Errors[tt.wantField])
		})
	}
}

func TestNoteService_Get(t *testing.T) {
	tests := []struct {
		name    string
		found   models.Note
		findErr error
		wantErr error
	}{
		{name: "owned", found: models.Note{NoteID: 8, UserID: 2}},
		{name: "someone else's", found: models.Note{NoteID: 8, UserID: 3}, wantErr: ErrForbidden},
		{name: "missing", findErr: store.ErrNoteNotFound, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, notes, _ := newTestNoteSvc(t)
			notes.EXPECT().GetNote(gomock.Any(), int64(8)).Return(tt.found, tt.findErr)

			_, err := svc.Get(context.Background(), 2, 8)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	svc, notes, categories := newTestNoteSvc(t)

	notes.EXPECT().GetNote(gomock.Any(), int64(8)).Return(models.Note{NoteID: 8, CategoryID: 1, UserID: 2}, nil)
	categories.EXPECT().ListCategories(gomock.Any(), int64(2)).Return(annCategories, nil)
	notes.EXPECT().
		UpdateNote(gomock.Any(), models.Note{NoteID: 8, Title: "t", Body: "b", CategoryID: 4, UserID: 2}).
		Return(nil)

	err := svc.Update(context.Background(), 2, models.Note{NoteID: 8, Title: "t", Body: "b", CategoryID: 4})
	require.NoError(t, err)
}

func TestNoteService_Update_Forbidden(t *testing.T) {
	svc, notes, _ := newTestNoteSvc(t)

	notes.EXPECT().GetNote(gomock.Any(), int64(8)).Return(models.Note{NoteID: 8, UserID: 3}, nil)

	err := svc.Update(context.Background(), 2, models.Note{NoteID: 8, Title: "t", Body: "b", CategoryID: 4})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestNoteService_Delete(t *testing.T) {
	svc, notes, _ := newTestNoteSvc(t)

	notes.EXPECT().GetNote(gomock.Any(), int64(8)).Return(models.Note{NoteID: 8, UserID: 2}, nil)
	notes.EXPECT().DeleteNote(gomock.Any(), int64(2), int64(8)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 2, 8))
}

func TestNoteService_Delete_Missing(t *testing.T) {
	svc, notes, _ := newTestNoteSvc(t)

	notes.EXPECT().GetNote(gomock.Any(), int64(8)).Return(models.Note{}, store.ErrNoteNotFound)

	err := svc.Delete(context.Background(), 2, 8)
	assert.ErrorIs(t, err, ErrNotFound)
}
