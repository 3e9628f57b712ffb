// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/models"
)

// safeRepository is the SQL implementation of [SafeRepository] over the
// "safes" table. The same code serves PostgreSQL and SQLite; the [DB]
// dialect picks placeholders and duplicate-key detection.
type safeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSafeRepository constructs a [SafeRepository] backed by db.
func NewSafeRepository(db *DB, logger *logger.Logger) SafeRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating safe repository")
	return &safeRepository{
		db:     db,
		logger: logger,
	}
}

// FindSafe implements [SafeRepository].
//
// Error handling:
//   - no row → [ErrSafeNotFound].
//   - query build failure → wrapped [ErrBuildingSQLQuery].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *safeRepository) FindSafe(ctx context.Context, id string) (models.SafeRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSafeQuery(r.db.placeholder(), id)
	if err != nil {
		log.Err(err).Str("func", "*safeRepository.FindSafe").Str("safe_id", id).Msg("failed to build query")
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.SafeRecord
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.Key, &record.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SafeRecord{}, ErrSafeNotFound
	case err != nil:
		log.Err(err).Str("func", "*safeRepository.FindSafe").Str("safe_id", id).Bool("retryable", r.db.retryable(err)).Msg("failed to query safe")
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// InsertSafe implements [SafeRepository].
//
// Error handling:
//   - unique violation on id (PostgreSQL 23505, SQLite PRIMARYKEY/UNIQUE)
//     → [ErrSafeAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *safeRepository) InsertSafe(ctx context.Context, record models.SafeRecord) (models.SafeRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSafeQuery(r.db.placeholder(), record)
	if err != nil {
		log.Err(err).Str("func", "*safeRepository.InsertSafe").Str("safe_id", record.ID).Msg("failed to build query")
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*safeRepository.InsertSafe").Str("safe_id", record.ID).Msg("safe already exists")
			return models.SafeRecord{}, ErrSafeAlreadyExists
		}

		log.Err(err).Str("func", "*safeRepository.InsertSafe").Str("safe_id", record.ID).Bool("retryable", r.db.retryable(err)).Msg("failed to insert safe")
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}
