// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/models"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{Backend: config.BackendMemory}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.SafeRepository)
	assert.NoError(t, s.Close())
}

func TestNewStorages_UnknownBackend(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{Backend: "mongo"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNewStorages_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Storage{
		Backend: config.BackendRedis,
		Redis:   config.Redis{URL: "redis://" + mr.Addr()},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.SafeRepository.InsertSafe(context.Background(), models.SafeRecord{ID: "acc-1", Key: "a2V5"})
	require.NoError(t, err)
	assert.True(t, mr.Exists("safe:acc-1"))
}

func TestNewStorages_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "safes.db")
	cfg := config.Storage{
		Backend: config.BackendSQLite,
		DB:      config.DB{DSN: dsn},
	}
	ctx := context.Background()

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	record := models.SafeRecord{ID: "acc-1", Key: "a2V5", CreatedAt: time.Now().UTC().Truncate(time.Microsecond)}
	_, err = s.SafeRepository.InsertSafe(ctx, record)
	require.NoError(t, err)

	_, err = s.SafeRepository.InsertSafe(ctx, models.SafeRecord{ID: "acc-1", Key: "b3RoZXI=", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, ErrSafeAlreadyExists)

	found, err := s.SafeRepository.FindSafe(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, record.Key, found.Key)
	assert.True(t, record.CreatedAt.Equal(found.CreatedAt))

	_, err = s.SafeRepository.FindSafe(ctx, "acc-2")
	assert.ErrorIs(t, err, ErrSafeNotFound)
}

func TestStorages_CloseJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	s := &Storages{closers: []io.Closer{
		closerFunc(func() error { return errA }),
		closerFunc(func() error { return nil }),
		closerFunc(func() error { return errB }),
	}}

	err := s.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}
