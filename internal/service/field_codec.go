// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-safe-keeper/internal/crypto"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
)

// valueTransform applies one safe operation to a single value.
type valueTransform func(safe crypto.SafeCodec, value any) (any, error)

func encryptValue(safe crypto.SafeCodec, value any) (any, error) {
	return safe.Write(value)
}

func decryptValue(safe crypto.SafeCodec, value any) (any, error) {
	token, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: value of type %T is not a ciphertext token", crypto.ErrDecryption, value)
	}
	return safe.Read(token)
}

// fieldCodec is the concrete implementation of [FieldCodec].
type fieldCodec struct {
	registry SafeRegistry
	logger   *logger.Logger
}

// NewFieldCodec constructs a [FieldCodec] resolving safes through registry.
func NewFieldCodec(registry SafeRegistry, logger *logger.Logger) FieldCodec {
	return &fieldCodec{
		registry: registry,
		logger:   logger,
	}
}

// EncryptObjectValues returns a copy of obj in which every value at one of
// keys is replaced by its ciphertext token. Paths absent from obj are
// skipped. With no keys, obj itself is returned and no safe is resolved.
func (c *fieldCodec) EncryptObjectValues(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error) {
	return c.transformObject(ctx, safeID, obj, keys, encryptValue)
}

// DecryptObjectValues is the inverse of [fieldCodec.EncryptObjectValues].
// A selected value that is not a string fails with crypto.ErrDecryption.
func (c *fieldCodec) DecryptObjectValues(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error) {
	return c.transformObject(ctx, safeID, obj, keys, decryptValue)
}

// EncryptValues implements [FieldCodec].
func (c *fieldCodec) EncryptValues(ctx context.Context, safeID string, values []any) ([]string, error) {
	if len(values) == 0 {
		return []string{}, nil
	}

	safe, err := c.registry.GetOrCreateSafe(ctx, safeID)
	if err != nil {
		return nil, err
	}

	results, err := transformAll(ctx, safe, values, encryptValue)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fieldCodec.EncryptValues").Str("safe_id", safeID).Msg("encryption failed")
		return nil, labelError(err, valueLabel)
	}

	tokens := make([]string, len(results))
	for i, r := range results {
		tokens[i] = r.(string)
	}
	return tokens, nil
}

// DecryptValues implements [FieldCodec].
func (c *fieldCodec) DecryptValues(ctx context.Context, safeID string, tokens []string) ([]any, error) {
	if len(tokens) == 0 {
		return []any{}, nil
	}

	safe, err := c.registry.GetOrCreateSafe(ctx, safeID)
	if err != nil {
		return nil, err
	}

	values := make([]any, len(tokens))
	for i, t := range tokens {
		values[i] = t
	}

	results, err := transformAll(ctx, safe, values, decryptValue)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fieldCodec.DecryptValues").Str("safe_id", safeID).Msg("decryption failed")
		return nil, labelError(err, valueLabel)
	}
	return results, nil
}

func (c *fieldCodec) transformObject(ctx context.Context, safeID string, obj map[string]any, keys []string, transform valueTransform) (map[string]any, error) {
	if len(keys) == 0 {
		return obj, nil
	}

	paths, err := parsePaths(keys)
	if err != nil {
		return nil, err
	}

	safe, err := c.registry.GetOrCreateSafe(ctx, safeID)
	if err != nil {
		return nil, err
	}

	present := make([]fieldPath, 0, len(paths))
	values := make([]any, 0, len(paths))
	for _, path := range paths {
		if v, ok := lookup(obj, path); ok {
			present = append(present, path)
			values = append(values, v)
		}
	}
	if len(present) == 0 {
		return obj, nil
	}

	results, err := transformAll(ctx, safe, values, transform)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fieldCodec.transformObject").Str("safe_id", safeID).Msg("field transform failed")
		return nil, labelError(err, func(i int) string { return fmt.Sprintf("field %q", present[i].String()) })
	}

	w := newObjectWriter(obj)
	for i, path := range present {
		w.set(path, results[i])
	}
	return w.root, nil
}

// indexedError remembers which input of transformAll failed.
type indexedError struct {
	index int
	err   error
}

func (e *indexedError) Error() string { return e.err.Error() }
func (e *indexedError) Unwrap() error { return e.err }

// labelError replaces an *indexedError by its cause prefixed with the label
// of the failed input.
func labelError(err error, label func(index int) string) error {
	var ie *indexedError
	if errors.As(err, &ie) {
		return fmt.Errorf("%s: %w", label(ie.index), ie.err)
	}
	return err
}

func valueLabel(index int) string {
	return fmt.Sprintf("value %d", index)
}

// transformAll applies transform to every value concurrently. Results keep
// the input order. The first failure cancels the remaining work and is
// returned as an *indexedError.
func transformAll(ctx context.Context, safe crypto.SafeCodec, values []any, transform valueTransform) ([]any, error) {
	results := make([]any, len(values))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, v := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := transform(safe, v)
			if err != nil {
				return &indexedError{index: i, err: err}
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
