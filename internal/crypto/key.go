// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// IVSize is the CTR initial counter block length in bytes.
	IVSize = 16

	// safeKeySize is the amount of randomness behind every safe key.
	safeKeySize = 16

	fingerprintSize = 8
)

// DeriveKeyBuffer returns the 32-byte cipher key for secret. The buffer is
// filled by repeating the bytes of secret and truncating at [KeySize]; an
// empty secret yields an all-zero buffer.
//
// This is a fill, not a KDF. Tokens written by every earlier version of the
// service depend on it.
func DeriveKeyBuffer(secret string) []byte {
	return fill(KeySize, secret)
}

// DeriveIV returns the 16-byte IV for a safe, filled the same way from the
// safe's stored (base64) key string. The IV is stable per safe, so Write is
// deterministic for a given plaintext.
func DeriveIV(safeKey string) []byte {
	return fill(IVSize, safeKey)
}

func fill(size int, source string) []byte {
	buf := make([]byte, size)
	if source == "" {
		return buf
	}

	for i := 0; i < size; {
		i += copy(buf[i:], source)
	}

	return buf
}

// GenerateSafeKey reads 128 bits from the OS CSPRNG and returns them
// base64-encoded (standard encoding), ready to be stored in a new
// [models.SafeRecord].
func GenerateSafeKey() (string, error) {
	raw := make([]byte, safeKeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate safe key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Fingerprint returns a short hex BLAKE2b-256 digest of the key buffer
// derived from secret. It lets operators compare the secrets of two
// instances from their logs without exposing the secret itself.
func Fingerprint(secret string) string {
	sum := blake2b.Sum256(DeriveKeyBuffer(secret))
	return hex.EncodeToString(sum[:fingerprintSize])
}
