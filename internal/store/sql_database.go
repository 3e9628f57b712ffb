package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/migrations"
)

// Dialect identifies the SQL engine behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB is a database/sql connection annotated with its dialect. The dialect
// selects placeholder style, migration dialect, and error classification.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.gooseDialect())
}

func (db *DB) gooseDialect() string {
	if db.dialect == DialectSQLite {
		return migrations.DialectSQLite
	}
	return migrations.DialectPostgres
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectSQLite {
		return sq.Question
	}
	return sq.Dollar
}

// isUniqueViolation reports whether err is the engine's duplicate-key error.
func (db *DB) isUniqueViolation(err error) bool {
	if db.dialect == DialectSQLite {
		return isSQLiteUniqueViolation(err)
	}
	return isPostgresUniqueViolation(err)
}

// retryable classifies a driver error with the dialect's classifier.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}
