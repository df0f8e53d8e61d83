package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

var categoryColumns = []string{"category_id", "label", "user_id"}

// categoryRepository is the SQL implementation of [CategoryRepository].
type categoryRepository struct {
	db *DB
	q  DBTX
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(category.TableName()).
		Columns("label", "user_id").
		Values(category.Label, category.UserID).
		Suffix("RETURNING category_id").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&category.CategoryID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error inserting category")
		return models.Category{}, r.db.driverError(ErrExecutingStatement, err)
	}

	return category, nil
}

// GetCategory loads a category by id regardless of its owner. Ownership is
// decided by the caller.
func (r *categoryRepository) GetCategory(ctx context.Context, categoryID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(categoryColumns...).
		From(models.Category{}.TableName()).
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Category
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&c.CategoryID, &c.Label, &c.UserID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Category{}, ErrCategoryNotFound
	case err != nil:
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Msg("error selecting category")
		return models.Category{}, r.db.driverError(ErrExecutingQuery, err)
	}

	return c, nil
}

// ListCategories returns the categories of userID ordered by id. No rows is
// an empty slice, not an error.
func (r *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(categoryColumns...).
		From(models.Category{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("category_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error selecting categories")
		return nil, r.db.driverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.CategoryID, &c.Label, &c.UserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.driverError(ErrScanningRows, err)
	}

	return categories, nil
}

// UpdateCategory renames the category matching both CategoryID and UserID.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) error {
	query, args, err := r.db.builder.
		Update(category.TableName()).
		Set("label", category.Label).
		Where(sq.Eq{"category_id": category.CategoryID}).
		Where(sq.Eq{"user_id": category.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*categoryRepository.UpdateCategory", query, args)
}

// DeleteCategory removes the category matching both ids. Notes filed under
// it must be removed first.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	query, args, err := r.db.builder.
		Delete(models.Category{}.TableName()).
		Where(sq.Eq{"category_id": categoryID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*categoryRepository.DeleteCategory", query, args)
}

func (r *categoryRepository) exec(ctx context.Context, fn, query string, args []any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error executing statement")
		return r.db.driverError(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.db.driverError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
