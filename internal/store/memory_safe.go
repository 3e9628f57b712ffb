package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-safe-keeper/models"
)

// memorySafeRepository keeps records in process memory. Used by tests and
// the "memory" backend for local development; nothing survives a restart.
type memorySafeRepository struct {
	mu      sync.RWMutex
	records map[string]models.SafeRecord
}

// NewMemorySafeRepository constructs an empty in-memory [SafeRepository].
func NewMemorySafeRepository() SafeRepository {
	return &memorySafeRepository{
		records: make(map[string]models.SafeRecord),
	}
}

// FindSafe implements [SafeRepository].
func (m *memorySafeRepository) FindSafe(ctx context.Context, id string) (models.SafeRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.SafeRecord{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return models.SafeRecord{}, ErrSafeNotFound
	}
	return record, nil
}

// InsertSafe implements [SafeRepository].
func (m *memorySafeRepository) InsertSafe(ctx context.Context, record models.SafeRecord) (models.SafeRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.SafeRecord{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; ok {
		return models.SafeRecord{}, ErrSafeAlreadyExists
	}
	m.records[record.ID] = record
	return record, nil
}
