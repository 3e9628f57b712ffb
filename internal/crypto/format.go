// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "strings"

const (
	// ScalarPrefix marks tokens whose plaintext was a plain string.
	ScalarPrefix = "$$$crypto$$$"

	// StructuredPrefix marks tokens whose plaintext is the JSON encoding of
	// a non-string value.
	StructuredPrefix = "$$$crypto-obj$$$"
)

// format binds a token prefix to the function decoding the payload that
// follows it.
type format struct {
	prefix string
	decode func(s *Safe, payload string) (any, error)
}

// formats is consulted in order by [Safe.Read]. Writers only ever produce
// the scalar and structured variants; older variants are added here and
// nowhere else.
var formats = []format{
	{prefix: StructuredPrefix, decode: (*Safe).readStructured},
	{prefix: ScalarPrefix, decode: (*Safe).readScalar},
}

// lookupFormat returns the format token belongs to and the payload after
// its prefix.
func lookupFormat(token string) (format, string, bool) {
	for _, f := range formats {
		if payload, ok := strings.CutPrefix(token, f.prefix); ok {
			return f, payload, true
		}
	}
	return format{}, "", false
}

// IsCiphertext reports whether value starts with a known token prefix.
func IsCiphertext(value string) bool {
	_, _, ok := lookupFormat(value)
	return ok
}
