// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrEncryption is returned when a value cannot be serialized or the
	// cipher fails while producing a token.
	ErrEncryption = errors.New("encryption error")

	// ErrDecryption is returned when a token cannot be turned back into a
	// value: unknown prefix, corrupted hex, undecodable plaintext.
	ErrDecryption = errors.New("decryption error")
)

var (
	// ErrUnknownFormat is returned by [Safe.Read] for tokens that start
	// with none of the registered prefixes.
	ErrUnknownFormat = fmt.Errorf("%w: unrecognized ciphertext prefix", ErrDecryption)

	// ErrInvalidKeyBuffer is returned by [NewSafe] when the key buffer is
	// not [KeySize] bytes long.
	ErrInvalidKeyBuffer = errors.New("invalid key buffer")

	// ErrEmptySafeKey is returned by [NewSafe] for records without a key.
	ErrEmptySafeKey = errors.New("safe record has no key")
)
