// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
)

// Storages holds the repositories of the application together with the
// connections they own.
type Storages struct {
	SafeRepository SafeRepository

	closers []io.Closer
}

// NewStorages connects the backend selected by cfg.Backend, applies
// migrations for SQL backends and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating storages...")

	switch cfg.Backend {
	case config.BackendPostgres, config.BackendSQLite:
		connect := NewConnectPostgres
		if cfg.Backend == config.BackendSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting %s: %w", cfg.Backend, err)
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			db.Close()
			return nil, err
		}

		return &Storages{
			SafeRepository: NewSafeRepository(db, log),
			closers:        []io.Closer{db},
		}, nil

	case config.BackendRedis:
		rdb, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting redis: %w", err)
		}

		return &Storages{
			SafeRepository: NewRedisSafeRepository(rdb, log),
			closers:        []io.Closer{rdb},
		}, nil

	case config.BackendMemory:
		log.Warn().Msg("memory storage backend: safes are lost on restart")
		return &Storages{SafeRepository: NewMemorySafeRepository()}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// Close releases all connections owned by the storages.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
