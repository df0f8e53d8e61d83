package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass is the result of [ErrorClassificator.Classify].
type ErrorClass int

const (
	// ClassOther covers every error the repositories do not treat specially.
	ClassOther ErrorClass = iota

	// ClassUniqueViolation marks a unique constraint violation.
	ClassUniqueViolation

	// ClassUnavailable marks transient failures of the database itself:
	// lost connections, shutdowns, locks.
	ClassUnavailable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not a
// *pgconn.PgError are [ClassOther].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ClassOther
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return ClassOther
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClass] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Unavailable codes:
//   - Class 08: connection exceptions (08000, 08003, 08006)
//   - Class 57: operator intervention (57P01, 57P03)
//
// Unique violation: 23505.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return ClassUnavailable

	// Class 57: operator intervention
	case pgerrcode.AdminShutdown,
		pgerrcode.CannotConnectNow:
		return ClassUnavailable
	}

	return ClassOther
}
