package service

import (
	"context"

	"github.com/MKhiriev/go-safe-keeper/internal/crypto"
	"github.com/MKhiriev/go-safe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SecretProvider exposes the shared secret every safe key buffer is derived
// from. config.App implements it.
type SecretProvider interface {
	SafeSecret() string
}

// SafeRegistry maps safe ids to safes, creating the key record on first use.
type SafeRegistry interface {
	// GetOrCreateSafe returns the safe stored under safeID, creating and
	// persisting a new key record if none exists yet. Concurrent first-time
	// callers converge on the same stored record.
	GetOrCreateSafe(ctx context.Context, safeID string) (*crypto.Safe, error)
}

// FieldCodec applies a safe to selected fields of JSON-like objects.
//
// Objects are map[string]any trees as produced by encoding/json; dotted
// paths ("prop.key2.key3") select leaves, numeric segments index arrays.
// Input objects are never mutated.
type FieldCodec interface {
	EncryptObjectValues(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error)
	DecryptObjectValues(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error)

	// EncryptValues encrypts every value of values under one safe.
	EncryptValues(ctx context.Context, safeID string, values []any) ([]string, error)
	// DecryptValues decrypts every token of tokens under one safe.
	DecryptValues(ctx context.Context, safeID string, tokens []string) ([]any, error)
}

// TokenService mints and verifies service tokens for the HTTP API.
type TokenService interface {
	CreateToken(ctx context.Context, serviceName string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
