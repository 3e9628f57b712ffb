// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-safe-keeper/internal/crypto"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/store"
	"github.com/MKhiriev/go-safe-keeper/models"
)

// safeRegistry is the concrete implementation of [SafeRegistry].
//
// Cross-process creation races are settled by the repository's atomic
// insert-if-absent followed by a re-fetch of the winning record. Concurrent
// first-time callers inside one process are additionally collapsed into a
// single store round-trip per safe id.
type safeRegistry struct {
	safeRepository store.SafeRepository
	secrets        SecretProvider

	group singleflight.Group

	// newKey and now are replaced in tests.
	newKey func() (string, error)
	now    func() time.Time

	logger *logger.Logger
}

// NewSafeRegistry constructs a [SafeRegistry] over repo. The shared secret
// is read from secrets every time a safe is constructed.
func NewSafeRegistry(repo store.SafeRepository, secrets SecretProvider, logger *logger.Logger) SafeRegistry {
	return &safeRegistry{
		safeRepository: repo,
		secrets:        secrets,
		newKey:         crypto.GenerateSafeKey,
		now:            time.Now,
		logger:         logger,
	}
}

// GetOrCreateSafe implements [SafeRegistry].
//
// Returns:
//   - [ErrInvalidArgument] if safeID is empty.
//   - ctx.Err(), wrapped, if ctx ends before the record is resolved.
//   - [*SafeStorageError] if the store fails for a reason other than a
//     duplicate id.
//   - a wrapped crypto error if the stored record cannot back a safe.
func (r *safeRegistry) GetOrCreateSafe(ctx context.Context, safeID string) (*crypto.Safe, error) {
	if safeID == "" {
		return nil, fmt.Errorf("%w: safe id is required", ErrInvalidArgument)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("error resolving safe %q: %w", safeID, err)
	}

	// The shared lookup ignores caller cancellation; a caller whose ctx ends
	// stops waiting and the lookup completes for the others.
	shareCtx := context.WithoutCancel(ctx)
	results := r.group.DoChan(safeID, func() (any, error) {
		return r.resolveRecord(shareCtx, safeID)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("error resolving safe %q: %w", safeID, ctx.Err())
	case res = <-results:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	record := res.Val.(models.SafeRecord)
	shared := res.Shared

	safe, err := crypto.NewSafe(record, crypto.DeriveKeyBuffer(r.secrets.SafeSecret()))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*safeRegistry.GetOrCreateSafe").
			Str("safe_id", safeID).
			Msg("stored safe record is unusable")
		return nil, fmt.Errorf("error building safe %q: %w", safeID, err)
	}

	if shared {
		logger.FromContext(ctx).Debug().Str("safe_id", safeID).Msg("safe lookup shared with a concurrent caller")
	}

	return safe, nil
}

// resolveRecord finds the record for safeID or creates it.
func (r *safeRegistry) resolveRecord(ctx context.Context, safeID string) (models.SafeRecord, error) {
	log := logger.FromContext(ctx).WithSafeID(safeID)

	record, err := r.safeRepository.FindSafe(ctx, safeID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, store.ErrSafeNotFound) {
		log.Err(err).Str("func", "*safeRegistry.resolveRecord").Msg("safe lookup failed")
		return models.SafeRecord{}, storageError(safeID, "find", err)
	}

	key, err := r.newKey()
	if err != nil {
		log.Err(err).Str("func", "*safeRegistry.resolveRecord").Msg("safe key generation failed")
		return models.SafeRecord{}, fmt.Errorf("error generating key for safe %q: %w", safeID, err)
	}

	record, err = r.safeRepository.InsertSafe(ctx, models.SafeRecord{
		ID:        safeID,
		Key:       key,
		CreatedAt: r.now().UTC().Truncate(time.Microsecond),
	})
	switch {
	case err == nil:
		log.Info().Msg("safe created")
		return record, nil
	case errors.Is(err, store.ErrSafeAlreadyExists):
		// another writer won the race; its record is the one to use
		log.Debug().Msg("safe created concurrently, re-fetching")
	default:
		log.Err(err).Str("func", "*safeRegistry.resolveRecord").Msg("safe insert failed")
		return models.SafeRecord{}, storageError(safeID, "insert", err)
	}

	record, err = r.safeRepository.FindSafe(ctx, safeID)
	if err != nil {
		log.Err(err).Str("func", "*safeRegistry.resolveRecord").Msg("safe re-fetch failed")
		return models.SafeRecord{}, storageError(safeID, "refetch", err)
	}

	return record, nil
}

func storageError(safeID, op string, err error) error {
	return &SafeStorageError{
		SafeID:    safeID,
		Op:        op,
		Err:       err,
		Retryable: store.IsRetryable(err),
	}
}
