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

var noteColumns = []string{"note_id", "title", "body", "category_id", "user_id"}

// noteRepository is the SQL implementation of [NoteRepository].
type noteRepository struct {
	db *DB
	q  DBTX
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := r.db.builder.
		Insert(note.TableName()).
		Columns("title", "body", "category_id", "user_id").
		Values(note.Title, note.Body, note.CategoryID, note.UserID).
		Suffix("RETURNING note_id").
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&note.NoteID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, r.db.driverError(ErrExecutingStatement, err)
	}

	return note, nil
}

// GetNote loads a note by id regardless of its owner.
func (r *noteRepository) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	query, args, err := r.db.builder.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n models.Note
	err = r.q.QueryRowContext(ctx, query, args...).Scan(&n.NoteID, &n.Title, &n.Body, &n.CategoryID, &n.UserID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.GetNote").Msg("error selecting note")
		return models.Note{}, r.db.driverError(ErrExecutingQuery, err)
	}

	return n, nil
}

// ListNotes returns every note of userID ordered by id.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return r.list(ctx, "*noteRepository.ListNotes", sq.Eq{"user_id": userID})
}

// ListNotesByCategory returns the notes of userID filed under categoryID.
func (r *noteRepository) ListNotesByCategory(ctx context.Context, userID, categoryID int64) ([]models.Note, error) {
	return r.list(ctx, "*noteRepository.ListNotesByCategory", sq.Eq{"user_id": userID}, sq.Eq{"category_id": categoryID})
}

func (r *noteRepository) list(ctx context.Context, fn string, where ...sq.Eq) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(noteColumns...).
		From(models.Note{}.TableName())
	for _, w := range where {
		builder = builder.Where(w)
	}

	query, args, err := builder.OrderBy("note_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error selecting notes")
		return nil, r.db.driverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err = rows.Scan(&n.NoteID, &n.Title, &n.Body, &n.CategoryID, &n.UserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.driverError(ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote overwrites title, body and category of the note matching both
// NoteID and UserID.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	query, args, err := r.db.builder.
		Update(note.TableName()).
		Set("title", note.Title).
		Set("body", note.Body).
		Set("category_id", note.CategoryID).
		Where(sq.Eq{"note_id": note.NoteID}).
		Where(sq.Eq{"user_id": note.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*noteRepository.UpdateNote", query, args)
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	query, args, err := r.db.builder.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"note_id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*noteRepository.DeleteNote", query, args)
}

func (r *noteRepository) exec(ctx context.Context, fn, query string, args []any) error {
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
		return ErrNoteNotFound
	}

	return nil
}
