// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the REST API of the safe
// service.
//
// The primary abstraction is [SafeClient]; [NewHTTPSafeClient] is its
// resty-based implementation. Non-2xx responses are mapped back to the
// sentinel errors in errors.go by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrServiceUnavailable] for
// 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-safe-keeper/models"
)

// SafeClient talks to a running safe service.
type SafeClient interface {
	// SetToken stores the service token attached as a bearer token to every
	// subsequent request. An empty token disables the header.
	SetToken(token string)

	// Token returns the token currently stored in the client.
	Token() string

	// GetOrCreateSafe ensures the safe safeID exists on the server.
	GetOrCreateSafe(ctx context.Context, safeID string) (models.SafeInfo, error)

	// EncryptObject returns obj with the values at keys encrypted under the
	// safe safeID.
	EncryptObject(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error)

	// DecryptObject is the inverse of EncryptObject.
	DecryptObject(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error)

	// EncryptValues encrypts each value under the safe safeID and returns
	// the tokens in input order.
	EncryptValues(ctx context.Context, safeID string, values []any) ([]string, error)

	// DecryptValues is the inverse of EncryptValues.
	DecryptValues(ctx context.Context, safeID string, tokens []string) ([]any, error)

	// Mask returns req.Object with the values at req.Keys replaced by the
	// mask.
	Mask(ctx context.Context, req models.MaskRequest) (map[string]any, error)

	// GetServerVersion reports what the server is running.
	GetServerVersion(ctx context.Context) (models.VersionInfo, error)
}
