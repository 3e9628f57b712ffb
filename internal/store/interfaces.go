package store

import (
	"context"

	"github.com/MKhiriev/go-safe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/safe_repository_mock.go -package=mock

// SafeRepository is the document store of safe records, keyed by safe id.
// It is shared by all backends (PostgreSQL, SQLite, Redis, memory).
type SafeRepository interface {
	// FindSafe returns the record stored under id, or [ErrSafeNotFound].
	FindSafe(ctx context.Context, id string) (models.SafeRecord, error)

	// InsertSafe stores record if no record with the same id exists yet.
	// The check and the write are atomic: when another writer got there
	// first, [ErrSafeAlreadyExists] is returned and nothing is changed.
	InsertSafe(ctx context.Context, record models.SafeRecord) (models.SafeRecord, error)
}

// ErrorClassificator decides whether a failed store operation may succeed
// if attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
