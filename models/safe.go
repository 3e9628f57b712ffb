// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SafeRecord is the persisted per-entity key record. One record exists per
// safe id; neither field changes after the record is created.
type SafeRecord struct {
	// ID is the caller-supplied opaque identifier of the tenant or entity
	// owning the safe.
	ID string `json:"id"`

	// Key is 128 bits of randomness, base64-encoded. The cipher IV of the
	// safe is derived from this string.
	Key string `json:"key"`

	// CreatedAt is set by the registry when the record is first synthesized.
	CreatedAt time.Time `json:"created_at"`
}

// SafeInfo is the public projection of a [SafeRecord]. The key never
// leaves the service.
type SafeInfo struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
