// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-safe-keeper/models"
)

// Safe is the per-entity encryption context of one safe id. It is
// immutable after construction and safe for concurrent use: every
// operation creates its own CTR stream from the shared block and IV.
type Safe struct {
	record models.SafeRecord
	block  cipher.Block
	iv     []byte
}

var _ SafeCodec = (*Safe)(nil)

// NewSafe binds record to the cipher key buffer (see [DeriveKeyBuffer]).
// The IV is derived from record.Key.
//
// Returns [ErrInvalidKeyBuffer] if keyBuffer is not [KeySize] bytes and
// [ErrEmptySafeKey] if the record carries no key.
func NewSafe(record models.SafeRecord, keyBuffer []byte) (*Safe, error) {
	if len(keyBuffer) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyBuffer, len(keyBuffer), KeySize)
	}
	if record.Key == "" {
		return nil, ErrEmptySafeKey
	}

	block, err := aes.NewCipher(keyBuffer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyBuffer, err)
	}

	return &Safe{
		record: record,
		block:  block,
		iv:     DeriveIV(record.Key),
	}, nil
}

// ID returns the safe id the Safe is bound to.
func (s *Safe) ID() string {
	return s.record.ID
}

// Record returns the underlying persisted record.
func (s *Safe) Record() models.SafeRecord {
	return s.record
}

// Write implements [SafeCodec].
//
// An empty string is never handed to the cipher: the bare scalar prefix is
// returned instead, and [Safe.Read] maps it back to "".
//
// Structured values are serialized without HTML escaping, the same bytes
// JSON.stringify produces for them.
//
// Returns an error wrapping [ErrEncryption] if a string is not valid UTF-8
// or value cannot be JSON-serialized (channels, functions, cyclic
// structures).
func (s *Safe) Write(value any) (string, error) {
	if text, ok := value.(string); ok {
		if !utf8.ValidString(text) {
			return "", fmt.Errorf("%w: string is not valid utf-8", ErrEncryption)
		}
		return s.seal(ScalarPrefix, []byte(text)), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("%w: serialize value: %w", ErrEncryption, err)
	}

	return s.seal(StructuredPrefix, bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// Read implements [SafeCodec]. Dispatch is purely by prefix, see formats.
//
// Returns an error wrapping [ErrDecryption] if the token has no known
// prefix, the payload is not valid hex, the plaintext is not valid UTF-8 or
// a structured payload is not valid JSON. A token read with the wrong safe
// either fails this way or yields a value different from the original.
func (s *Safe) Read(token string) (any, error) {
	f, payload, ok := lookupFormat(token)
	if !ok {
		return nil, ErrUnknownFormat
	}

	return f.decode(s, payload)
}

func (s *Safe) readScalar(payload string) (any, error) {
	plaintext, err := s.open(payload)
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

func (s *Safe) readStructured(payload string) (any, error) {
	plaintext, err := s.open(payload)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal([]byte(plaintext), &value); err != nil {
		return nil, fmt.Errorf("%w: parse structured payload: %w", ErrDecryption, err)
	}

	return value, nil
}

// seal encrypts plaintext and prepends prefix. Zero-length input skips the
// cipher.
func (s *Safe) seal(prefix string, plaintext []byte) string {
	if len(plaintext) == 0 {
		return prefix
	}

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(s.block, s.iv).XORKeyStream(ciphertext, plaintext)

	return prefix + hex.EncodeToString(ciphertext)
}

// open hex-decodes and decrypts payload. Zero-length input skips the
// cipher.
func (s *Safe) open(payload string) (string, error) {
	if payload == "" {
		return "", nil
	}

	ciphertext, err := hex.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: decode hex payload: %w", ErrDecryption, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCTR(s.block, s.iv).XORKeyStream(plaintext, ciphertext)

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrDecryption)
	}

	return string(plaintext), nil
}
