package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Storage error taxonomy. Repositories return errors wrapping exactly one of
// these so callers can classify with errors.Is.
var (
	// ErrNotFound is returned when an update targets a row that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("unique constraint violated")
	// ErrReference is returned when a foreign-key constraint rejects a write:
	// either the referenced row is missing or the row is still referenced.
	ErrReference = errors.New("foreign key constraint violated")
	// ErrUnavailable is returned when the database cannot be reached.
	ErrUnavailable = errors.New("database unavailable")
)

// PostgreSQL SQLSTATE codes (class 23, integrity constraint violation).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// TranslateError maps driver and gorm errors onto the storage taxonomy.
// Errors that match no category are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if isClassified(err) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrReference, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrReference, err)
		}
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %w", ErrReference, err)
		}
		// Deleting a parent row that is still referenced surfaces as a
		// trigger constraint (1811) rather than ErrConstraintForeignKey.
		if sqliteErr.Code == sqlite3.ErrConstraint && strings.Contains(sqliteErr.Error(), "FOREIGN KEY") {
			return fmt.Errorf("%w: %w", ErrReference, err)
		}
		return err
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func isClassified(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrReference) ||
		errors.Is(err, ErrUnavailable)
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	// database/sql does not export its closed-pool error.
	return strings.Contains(err.Error(), "sql: database is closed")
}
