package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-safe-keeper/models"
)

const safesTable = "safes"

var safeColumns = []string{"id", "key", "created_at"}

// buildFindSafeQuery builds the lookup of one safe record by id.
func buildFindSafeQuery(format sq.PlaceholderFormat, id string) (string, []any, error) {
	return sq.Select(safeColumns...).
		From(safesTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(format).
		ToSql()
}

// buildInsertSafeQuery builds a plain INSERT. Insert-if-absent semantics
// come from the primary key on id: a duplicate fails with the engine's
// unique-violation error, which the repository maps to
// [ErrSafeAlreadyExists].
func buildInsertSafeQuery(format sq.PlaceholderFormat, record models.SafeRecord) (string, []any, error) {
	return sq.Insert(safesTable).
		Columns(safeColumns...).
		Values(record.ID, record.Key, record.CreatedAt).
		PlaceholderFormat(format).
		ToSql()
}
