package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Repositories groups the repositories bound to one query handle: either the
// connection pool or a single transaction.
type Repositories struct {
	Users      UserRepository
	Categories CategoryRepository
	Notes      NoteRepository
}

// Storages is the storage layer handed to the services. It exposes the
// pool-bound repositories directly and implements [Transactor].
type Storages struct {
	Repositories
	db     *DB
	logger *logger.Logger
}

// NewStorages builds the repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Msg("creating storages")
	return &Storages{
		Repositories: newRepositories(db, db.DB),
		db:           db,
		logger:       log,
	}
}

func newRepositories(db *DB, q DBTX) Repositories {
	return Repositories{
		Users:      &userRepository{db: db, q: q},
		Categories: &categoryRepository{db: db, q: q},
		Notes:      &noteRepository{db: db, q: q},
	}
}

// InTx implements [Transactor]. Every repository passed to fn runs on the
// same transaction, which is committed when fn returns nil.
func (s *Storages) InTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return WithTx(ctx, s.db.DB, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, newRepositories(s.db, tx))
	})
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return s.db.driverError(ErrUnavailable, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
