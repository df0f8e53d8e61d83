// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
)

// DB wraps the connection pool together with the dialect specific pieces the
// repositories need: the squirrel placeholder format and the driver error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations of the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// driverError wraps err under sentinel. Transient failures additionally
// match [ErrUnavailable].
func (db *DB) driverError(sentinel error, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == ClassUnavailable {
		return fmt.Errorf("%w: %w: %w", ErrUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// isUniqueViolation reports whether err was raised by a unique constraint.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == ClassUniqueViolation
}
