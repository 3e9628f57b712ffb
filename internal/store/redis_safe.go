// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-safe-keeper/internal/config"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/models"
)

const redisSafeKeyPrefix = "safe:"

// redisSafeRepository is the Redis implementation of [SafeRepository].
// Each record is a JSON string under "safe:<id>" without expiry; SETNX
// provides insert-if-absent.
type redisSafeRepository struct {
	rdb    redis.UniversalClient
	logger *logger.Logger
}

// NewConnectRedis parses cfg.URL (e.g. "redis://:password@host:6379/1"),
// creates a client and verifies it with a ping.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("invalid redis url")
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err = rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		rdb.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return rdb, nil
}

// NewRedisSafeRepository constructs a [SafeRepository] backed by rdb.
func NewRedisSafeRepository(rdb redis.UniversalClient, logger *logger.Logger) SafeRepository {
	logger.Debug().Msg("creating redis safe repository")
	return &redisSafeRepository{
		rdb:    rdb,
		logger: logger,
	}
}

// FindSafe implements [SafeRepository].
func (r *redisSafeRepository) FindSafe(ctx context.Context, id string) (models.SafeRecord, error) {
	log := logger.FromContext(ctx)

	raw, err := r.rdb.Get(ctx, redisSafeKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.SafeRecord{}, ErrSafeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*redisSafeRepository.FindSafe").Str("safe_id", id).Msg("failed to get safe")
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	var record models.SafeRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		log.Err(err).Str("func", "*redisSafeRepository.FindSafe").Str("safe_id", id).Msg("failed to decode safe")
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrDecodingRecord, err)
	}

	return record, nil
}

// InsertSafe implements [SafeRepository].
func (r *redisSafeRepository) InsertSafe(ctx context.Context, record models.SafeRecord) (models.SafeRecord, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(record)
	if err != nil {
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}

	created, err := r.rdb.SetNX(ctx, redisSafeKey(record.ID), payload, 0).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisSafeRepository.InsertSafe").Str("safe_id", record.ID).Msg("failed to insert safe")
		return models.SafeRecord{}, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}
	if !created {
		log.Debug().Str("func", "*redisSafeRepository.InsertSafe").Str("safe_id", record.ID).Msg("safe already exists")
		return models.SafeRecord{}, ErrSafeAlreadyExists
	}

	return record, nil
}

func redisSafeKey(id string) string {
	return redisSafeKeyPrefix + id
}
