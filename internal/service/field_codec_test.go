// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/go-safe-keeper/internal/crypto"
	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/store"
	"github.com/MKhiriev/go-safe-keeper/models"
)

// registryFunc adapts a function to [SafeRegistry].
type registryFunc func(ctx context.Context, safeID string) (*crypto.Safe, error)

func (f registryFunc) GetOrCreateSafe(ctx context.Context, safeID string) (*crypto.Safe, error) {
	return f(ctx, safeID)
}

// newTestCodec builds a codec whose safe "acc-1" uses the fixed test key.
func newTestCodec(t *testing.T) FieldCodec {
	t.Helper()

	repo := store.NewMemorySafeRepository()
	_, err := repo.InsertSafe(context.Background(), models.SafeRecord{ID: "acc-1", Key: testSafeKey})
	require.NoError(t, err)

	return NewFieldCodec(NewSafeRegistry(repo, testSecrets, logger.Nop()), logger.Nop())
}

// deepCopy clones a JSON-like object through a JSON round trip.
func deepCopy(t *testing.T, obj map[string]any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(obj)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func samePointer(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// ─────────────────────────────────────────────
// EncryptObjectValues / DecryptObjectValues
// ─────────────────────────────────────────────

func TestEncryptObjectValues_NoKeysSkipsLookup(t *testing.T) {
	called := false
	codec := NewFieldCodec(registryFunc(func(context.Context, string) (*crypto.Safe, error) {
		called = true
		return nil, errors.New("must not be called")
	}), logger.Nop())
	obj := map[string]any{"a": "x"}

	out, err := codec.EncryptObjectValues(context.Background(), "", obj)
	require.NoError(t, err)
	assert.True(t, samePointer(obj, out))

	out, err = codec.DecryptObjectValues(context.Background(), "acc-1", obj)
	require.NoError(t, err)
	assert.True(t, samePointer(obj, out))
	assert.False(t, called)
}

func TestEncryptObjectValues_OverlappingPathsOuterWins(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	for _, keys := range [][]string{{"a.b", "a"}, {"a", "a.b"}} {
		obj := map[string]any{"a": map[string]any{"b": "x"}, "c": "y"}

		enc, err := codec.EncryptObjectValues(ctx, "acc-1", obj, keys...)
		require.NoError(t, err)

		token, ok := enc["a"].(string)
		require.True(t, ok, "keys %v: a should be one token, got %T", keys, enc["a"])
		assert.True(t, strings.HasPrefix(token, "$$$crypto-obj$$$"))
		assert.Equal(t, "y", enc["c"])
		assert.Equal(t, map[string]any{"b": "x"}, obj["a"])

		dec, err := codec.DecryptObjectValues(ctx, "acc-1", enc, keys...)
		require.NoError(t, err)
		assert.Equal(t, obj, dec)
	}
}

func TestEncryptObjectValues_SelectedFieldOnly(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	obj := map[string]any{"a": "mysecret", "b": "y"}

	enc, err := codec.EncryptObjectValues(ctx, "acc-1", obj, "a")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": "$$$crypto$$$6d8e64b05088f549", "b": "y"}, enc)
	assert.Equal(t, map[string]any{"a": "mysecret", "b": "y"}, obj, "input must not change")

	dec, err := codec.DecryptObjectValues(ctx, "acc-1", enc, "a")
	require.NoError(t, err)
	assert.Equal(t, obj, dec)
}

func TestEncryptObjectValues_NestedPath(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	obj := map[string]any{
		"prop": map[string]any{
			"k1": "plain",
			"k2": map[string]any{"k3": "secret"},
		},
		"other": map[string]any{"keep": true},
	}
	before := deepCopy(t, obj)

	enc, err := codec.EncryptObjectValues(ctx, "acc-1", obj, "prop.k2.k3")
	require.NoError(t, err)

	prop := enc["prop"].(map[string]any)
	assert.Equal(t, "plain", prop["k1"])
	k3 := prop["k2"].(map[string]any)["k3"].(string)
	assert.True(t, strings.HasPrefix(k3, crypto.ScalarPrefix))
	assert.True(t, samePointer(obj["other"], enc["other"]), "untouched subtrees are shared")
	assert.Equal(t, before, obj, "input must not change")

	dec, err := codec.DecryptObjectValues(ctx, "acc-1", enc, "prop.k2.k3")
	require.NoError(t, err)
	assert.Equal(t, before, dec)
}

func TestEncryptObjectValues_ArrayIndex(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	obj := map[string]any{
		"cards": []any{
			map[string]any{"number": "4111"},
			map[string]any{"number": "5500"},
		},
	}
	before := deepCopy(t, obj)

	enc, err := codec.EncryptObjectValues(ctx, "acc-1", obj, "cards.1.number", "cards.7.number", "cards.x.number")
	require.NoError(t, err)

	cards := enc["cards"].([]any)
	assert.Equal(t, "4111", cards[0].(map[string]any)["number"])
	assert.True(t, crypto.IsCiphertext(cards[1].(map[string]any)["number"].(string)))
	assert.Equal(t, before, obj)

	dec, err := codec.DecryptObjectValues(ctx, "acc-1", enc, "cards.1.number")
	require.NoError(t, err)
	assert.Equal(t, before, dec)
}

func TestEncryptObjectValues_StructuredValues(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	obj := map[string]any{
		"count":   float64(42),
		"profile": map[string]any{"a": float64(1), "b": []any{true, nil, "x"}},
		"nothing": nil,
		"empty":   "",
	}
	keys := []string{"count", "profile", "nothing", "empty"}

	enc, err := codec.EncryptObjectValues(ctx, "acc-1", obj, keys...)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(enc["profile"].(string), crypto.StructuredPrefix))
	assert.True(t, strings.HasPrefix(enc["count"].(string), crypto.StructuredPrefix))
	assert.Equal(t, crypto.ScalarPrefix, enc["empty"])
	assert.True(t, strings.HasPrefix(enc["nothing"].(string), crypto.StructuredPrefix))

	dec, err := codec.DecryptObjectValues(ctx, "acc-1", enc, keys...)
	require.NoError(t, err)
	assert.Equal(t, obj, dec)
}

func TestEncryptObjectValues_MissingPathsSkipped(t *testing.T) {
	codec := newTestCodec(t)
	obj := map[string]any{"a": "x", "s": "scalar"}

	out, err := codec.EncryptObjectValues(context.Background(), "acc-1", obj, "missing", "a.deeper", "s.0")
	require.NoError(t, err)
	assert.Equal(t, obj, out)
}

func TestEncryptObjectValues_DuplicateKeys(t *testing.T) {
	codec := newTestCodec(t)
	obj := map[string]any{"a": "mysecret"}

	out, err := codec.EncryptObjectValues(context.Background(), "acc-1", obj, "a", "a")
	require.NoError(t, err)
	assert.Equal(t, "$$$crypto$$$6d8e64b05088f549", out["a"])
}

func TestTransformObject_InvalidArguments(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	obj := map[string]any{"a": "x"}

	_, err := codec.EncryptObjectValues(ctx, "", obj, "a")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	for _, key := range []string{"", "a..b", ".a", "a."} {
		_, err = codec.EncryptObjectValues(ctx, "acc-1", obj, key)
		assert.ErrorIs(t, err, ErrInvalidArgument, "key %q", key)
	}
}

func TestDecryptObjectValues_Failures(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		value   any
		wantErr error
	}{
		{name: "not a string", value: float64(7), wantErr: crypto.ErrDecryption},
		{name: "plain string", value: "hello", wantErr: crypto.ErrUnknownFormat},
		{name: "corrupted hex", value: crypto.ScalarPrefix + "zz", wantErr: crypto.ErrDecryption},
		{name: "bare structured prefix", value: crypto.StructuredPrefix, wantErr: crypto.ErrDecryption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := map[string]any{"ok": "$$$crypto$$$6d8e64b05088f549", "bad": tt.value}

			out, err := codec.DecryptObjectValues(ctx, "acc-1", obj, "ok", "bad")
			assert.Nil(t, out, "no partially decrypted object on failure")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), `field "bad"`)
		})
	}
}

func TestDecryptObjectValues_WrongSafeNeverYieldsOriginal(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	obj := map[string]any{"a": "mysecret", "b": map[string]any{"n": float64(1)}}

	enc, err := codec.EncryptObjectValues(ctx, "acc-1", obj, "a", "b")
	require.NoError(t, err)

	dec, err := codec.DecryptObjectValues(ctx, "acc-2", enc, "a", "b")
	if err != nil {
		assert.ErrorIs(t, err, crypto.ErrDecryption)
		return
	}
	assert.NotEqual(t, obj, dec)
}

func TestTransformObject_RegistryError(t *testing.T) {
	storageErr := &SafeStorageError{SafeID: "acc-1", Op: "find", Err: errors.New("down")}
	codec := NewFieldCodec(registryFunc(func(context.Context, string) (*crypto.Safe, error) {
		return nil, storageErr
	}), logger.Nop())

	_, err := codec.EncryptObjectValues(context.Background(), "acc-1", map[string]any{"a": "x"}, "a")
	assert.ErrorIs(t, err, ErrSafeStorage)
}

func TestTransformObject_CancelledContext(t *testing.T) {
	codec := newTestCodec(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := codec.EncryptObjectValues(ctx, "acc-1", map[string]any{"a": "x"}, "a")
	assert.ErrorIs(t, err, context.Canceled)
}

// ─────────────────────────────────────────────
// EncryptValues / DecryptValues
// ─────────────────────────────────────────────

func TestEncryptValues_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()
	values := []any{"mysecret", "héllo wörld", map[string]any{"a": float64(1), "b": []any{true, nil, "x"}}, ""}

	tokens, err := codec.EncryptValues(ctx, "acc-1", values)
	require.NoError(t, err)
	require.Len(t, tokens, len(values))
	assert.Equal(t, "$$$crypto$$$6d8e64b05088f549", tokens[0])
	assert.True(t, strings.HasPrefix(tokens[1], crypto.ScalarPrefix))
	assert.True(t, strings.HasPrefix(tokens[2], crypto.StructuredPrefix))
	assert.Equal(t, crypto.ScalarPrefix, tokens[3])

	decoded, err := codec.DecryptValues(ctx, "acc-1", tokens)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestEncryptValues_EmptyInputSkipsLookup(t *testing.T) {
	codec := NewFieldCodec(registryFunc(func(context.Context, string) (*crypto.Safe, error) {
		t.Fatal("registry must not be called")
		return nil, nil
	}), logger.Nop())

	tokens, err := codec.EncryptValues(context.Background(), "acc-1", nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)

	values, err := codec.DecryptValues(context.Background(), "acc-1", nil)
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestEncryptValues_Errors(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	_, err := codec.EncryptValues(ctx, "acc-1", []any{"ok", make(chan int)})
	require.ErrorIs(t, err, crypto.ErrEncryption)
	assert.Contains(t, err.Error(), "value 1")

	_, err = codec.DecryptValues(ctx, "acc-1", []string{"nope"})
	require.ErrorIs(t, err, crypto.ErrDecryption)
	assert.Contains(t, err.Error(), "value 0")

	_, err = codec.EncryptValues(ctx, "", []any{"x"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// ─────────────────────────────────────────────
// properties
// ─────────────────────────────────────────────

func TestProperty_ObjectRoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		obj := rapid.MapOf(
			rapid.StringMatching(`[a-z]{1,6}`),
			rapid.String(),
		).Draw(rt, "obj")

		input := make(map[string]any, len(obj))
		var keys []string
		for k, v := range obj {
			input[k] = v
			if rapid.Bool().Draw(rt, "select_"+k) {
				keys = append(keys, k)
			}
		}
		keys = append(keys, rapid.StringMatching(`zz[a-z]{1,3}`).Draw(rt, "absent"))

		enc, err := codec.EncryptObjectValues(ctx, "acc-1", input, keys...)
		require.NoError(rt, err)

		for k, v := range input {
			selected := false
			for _, key := range keys {
				selected = selected || key == k
			}
			if selected {
				assert.True(rt, crypto.IsCiphertext(enc[k].(string)), "key %q", k)
			} else {
				assert.Equal(rt, v, enc[k], "key %q", k)
			}
		}

		dec, err := codec.DecryptObjectValues(ctx, "acc-1", enc, keys...)
		require.NoError(rt, err)
		assert.Equal(rt, input, dec)
	})
}
