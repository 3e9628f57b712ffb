// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ObjectRequest is the body of the encrypt and decrypt endpoints.
type ObjectRequest struct {
	// Object is the (possibly nested) JSON object to transform.
	Object map[string]any `json:"object"`

	// Keys lists dotted paths (e.g. "prop.key2.key3") of the leaves to
	// transform. Paths missing from Object are skipped.
	Keys []string `json:"keys"`
}

// ObjectResponse carries the transformed object back to the caller.
type ObjectResponse struct {
	Object map[string]any `json:"object"`
}

// ValuesPayload carries plain values: the body of the values/encrypt
// endpoint and the answer of values/decrypt.
type ValuesPayload struct {
	Values []any `json:"values"`
}

// TokensPayload carries ciphertext tokens in the order of the values they
// stand for.
type TokensPayload struct {
	Tokens []string `json:"tokens"`
}

// MaskRequest is the body of the mask endpoint. An empty Mask selects the
// default redaction literal.
type MaskRequest struct {
	Object map[string]any `json:"object"`
	Keys   []string       `json:"keys"`
	Mask   string         `json:"mask,omitempty"`
}

// ErrorResponse is written by the HTTP layer for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
