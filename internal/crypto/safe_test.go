// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/MKhiriev/go-safe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	testSecret  = "secret"
	testSafeKey = "c2FmZS1rZXktZm9yLXRlc3Rz"
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

func newTestSafe(t testingT, secret, safeKey string) *Safe {
	t.Helper()

	s, err := NewSafe(models.SafeRecord{ID: "account-1", Key: safeKey}, DeriveKeyBuffer(secret))
	require.NoError(t, err)
	return s
}

// ─────────────────────────────────────────────
// NewSafe
// ─────────────────────────────────────────────

func TestNewSafe_InvalidKeyBuffer(t *testing.T) {
	_, err := NewSafe(models.SafeRecord{ID: "a", Key: testSafeKey}, []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKeyBuffer)
}

func TestNewSafe_EmptyRecordKey(t *testing.T) {
	_, err := NewSafe(models.SafeRecord{ID: "a"}, DeriveKeyBuffer(testSecret))
	assert.ErrorIs(t, err, ErrEmptySafeKey)
}

func TestNewSafe_KeepsRecord(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	assert.Equal(t, "account-1", s.ID())
	assert.Equal(t, testSafeKey, s.Record().Key)
}

// ─────────────────────────────────────────────
// Write / Read: known answers
// ─────────────────────────────────────────────

// Tokens below were produced by the previous implementation of the service
// and must stay readable and reproducible.
func TestSafe_KnownTokens(t *testing.T) {
	tests := []struct {
		name  string
		value any
		token string
	}{
		{
			name:  "ascii string",
			value: "mysecret",
			token: ScalarPrefix + "6d8e64b05088f549",
		},
		{
			name:  "utf-8 string",
			value: "héllo wörld",
			token: ScalarPrefix + "6834beb95f95b04a478c2d618e",
		},
		{
			name:  "structure",
			value: map[string]any{"a": float64(1), "b": []any{true, nil, "x"}},
			token: StructuredPrefix + "7bd576f709cbbc1fe61865569e768444a9bd086282b154ab68956a",
		},
		{
			name:  "html characters stay unescaped",
			value: map[string]any{"a": "<b>&"},
			token: StructuredPrefix + "7bd576f709d8ac5fba1c7d70",
		},
	}

	s := newTestSafe(t, testSecret, testSafeKey)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := s.Write(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.token, token)

			value, err := s.Read(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestSafe_WriteIsDeterministic(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	first, err := s.Write("same input")
	require.NoError(t, err)
	second, err := s.Write("same input")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ─────────────────────────────────────────────
// Write / Read: edge cases
// ─────────────────────────────────────────────

func TestSafe_EmptyString(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	token, err := s.Write("")
	require.NoError(t, err)
	assert.Equal(t, ScalarPrefix, token)

	value, err := s.Read(token)
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSafe_NonStringScalarsUseStructuredPrefix(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	for _, value := range []any{float64(42), true, nil, []any{"a", float64(2)}} {
		token, err := s.Write(value)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(token, StructuredPrefix), "token %q", token)

		decoded, err := s.Read(token)
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestSafe_WriteUnserializable(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	for name, value := range map[string]any{
		"channel":              make(chan int),
		"function":             func() {},
		"cycle":                cyclic,
		"invalid utf-8 string": "ab\xffcd",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Write(value)
			assert.ErrorIs(t, err, ErrEncryption)
		})
	}
}

func TestSafe_ReadErrors(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	tests := []struct {
		name  string
		token string
	}{
		{name: "no prefix", token: "6d8e64b05088f549"},
		{name: "plain text", token: "hello"},
		{name: "empty token", token: ""},
		{name: "broken hex", token: ScalarPrefix + "zz"},
		{name: "odd hex length", token: ScalarPrefix + "6d8"},
		{name: "bare structured prefix", token: StructuredPrefix},
		{name: "structured payload is not json", token: StructuredPrefix + "6d8e64b05088f549"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Read(tt.token)
			assert.ErrorIs(t, err, ErrDecryption)
		})
	}
}

func TestSafe_ReadUnknownPrefix(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	_, err := s.Read("$$$triplesec$$$abcd")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSafe_ReadWithTamperedSafeKey(t *testing.T) {
	original := newTestSafe(t, testSecret, testSafeKey)
	tampered := newTestSafe(t, testSecret, "jim")

	token, err := original.Write("mysecret")
	require.NoError(t, err)

	value, err := tampered.Read(token)
	if err != nil {
		assert.ErrorIs(t, err, ErrDecryption)
		return
	}
	assert.NotEqual(t, "mysecret", value)
}

func TestSafe_ReadWithDifferentSecret(t *testing.T) {
	original := newTestSafe(t, testSecret, testSafeKey)
	other := newTestSafe(t, "another-secret", testSafeKey)

	token, err := original.Write(map[string]any{"k": "v"})
	require.NoError(t, err)

	value, err := other.Read(token)
	if err != nil {
		assert.ErrorIs(t, err, ErrDecryption)
		return
	}
	assert.NotEqual(t, map[string]any{"k": "v"}, value)
}

func TestSafe_ConcurrentUse(t *testing.T) {
	s := newTestSafe(t, testSecret, testSafeKey)

	want, err := s.Write("shared")
	require.NoError(t, err)

	done := make(chan string, 32)
	for range 32 {
		go func() {
			token, _ := s.Write("shared")
			done <- token
		}()
	}
	for range 32 {
		assert.Equal(t, want, <-done)
	}
}

// ─────────────────────────────────────────────
// Properties
// ─────────────────────────────────────────────

func TestProperty_StringRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		safeKey := rapid.StringMatching(`[A-Za-z0-9+/]{1,24}`).Draw(t, "safeKey")
		secret := rapid.String().Draw(t, "secret")
		value := rapid.String().Draw(t, "value")

		s := newTestSafe(t, secret, safeKey)

		token, err := s.Write(value)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		decoded, err := s.Read(token)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if decoded != value {
			t.Fatalf("round trip mismatch: got %q, want %q", decoded, value)
		}
	})
}

func TestProperty_StructuredRoundTrip(t *testing.T) {
	leaf := rapid.OneOf(
		rapid.Map(rapid.String(), func(s string) any { return s }),
		rapid.Map(rapid.IntRange(-1<<40, 1<<40), func(i int) any { return float64(i) }),
		rapid.Map(rapid.Bool(), func(b bool) any { return b }),
		rapid.Just[any](nil),
	)
	object := rapid.MapOf(rapid.StringMatching(`[a-z]{1,8}`), leaf)

	rapid.Check(t, func(t *rapid.T) {
		s := newTestSafe(t, testSecret, testSafeKey)

		value := map[string]any(object.Draw(t, "object"))

		token, err := s.Write(value)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		decoded, err := s.Read(token)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		assert.Equal(t, value, decoded)
	})
}

func TestProperty_TokenPayloadIsHex(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSafe(t, testSecret, testSafeKey)
		value := rapid.StringN(1, 64, -1).Draw(t, "value")

		token, err := s.Write(value)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		payload := strings.TrimPrefix(token, ScalarPrefix)
		if _, err := hex.DecodeString(payload); err != nil {
			t.Fatalf("payload %q is not hex: %v", payload, err)
		}
		if len(payload) != 2*len(value) {
			t.Fatalf("payload length %d, want %d", len(payload), 2*len(value))
		}
	})
}
