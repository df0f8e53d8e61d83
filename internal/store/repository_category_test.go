package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	insertCategoryQuery = `^INSERT INTO categories \(label,user_id\) VALUES \(\$1,\$2\) RETURNING category_id$`
	selectCategoryQuery = "SELECT category_id, label, user_id FROM categories WHERE category_id = $1"
	listCategoriesQuery = "SELECT category_id, label, user_id FROM categories WHERE user_id = $1 ORDER BY category_id"
	updateCategoryQuery = "UPDATE categories SET label = $1 WHERE category_id = $2 AND user_id = $3"
	deleteCategoryQuery = "DELETE FROM categories WHERE category_id = $1 AND user_id = $2"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &categoryRepository{db: db, q: db.DB}, mock
}

func TestCreateCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(insertCategoryQuery).
		WithArgs("Groceries", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id"}).AddRow(11))

	created, err := repo.CreateCategory(context.Background(), models.Category{Label: "Groceries", UserID: 3})
	require.NoError(t, err)
	assert.Equal(t, models.Category{CategoryID: 11, Label: "Groceries", UserID: 3}, created)
}

func TestGetCategory(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		want    models.Category
		wantErr error
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(categoryColumns).AddRow(5, "Work", 2),
			want: models.Category{CategoryID: 5, Label: "Work", UserID: 2},
		},
		{
			name:    "missing",
			rows:    sqlmock.NewRows(categoryColumns),
			wantErr: ErrCategoryNotFound,
		},
		{
			name:    "driver error",
			err:     errors.New("boom"),
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCategoryRepo(t)

			exp := mock.ExpectQuery(regexp.QuoteMeta(selectCategoryQuery)).WithArgs(int64(5))
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			got, err := repo.GetCategory(context.Background(), 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCategories(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(1, "Home", 2).AddRow(4, "Work", 2))

	got, err := repo.ListCategories(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{
		{CategoryID: 1, Label: "Home", UserID: 2},
		{CategoryID: 4, Label: "Work", UserID: 2},
	}, got)
}

func TestListCategories_EmptyIsNotAnError(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(categoryColumns))

	got, err := repo.ListCategories(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListCategories_QueryError(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).
		WillReturnError(pgError("57P01"))

	_, err := repo.ListCategories(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUpdateCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(updateCategoryQuery)).
		WithArgs("Renamed", int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(updateCategoryQuery)).
		WithArgs("Renamed", int64(5), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateCategory(context.Background(), models.Category{CategoryID: 5, Label: "Renamed", UserID: 2}))

	err := repo.UpdateCategory(context.Background(), models.Category{CategoryID: 5, Label: "Renamed", UserID: 9})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteCategoryQuery)).
		WithArgs(int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteCategoryQuery)).
		WithArgs(int64(6), int64(2)).
		WillReturnError(errors.New("fk violation"))

	require.NoError(t, repo.DeleteCategory(context.Background(), 2, 5))

	err := repo.DeleteCategory(context.Background(), 2, 6)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
