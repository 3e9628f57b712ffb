// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] is usable at
// startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Secret == "" {
		return fmt.Errorf("%w: safe secret is required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Backend {
	case BackendPostgres, BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend requires a database DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	case BackendRedis:
		if cfg.Storage.Redis.URL == "" {
			return fmt.Errorf("%w: redis backend requires a URL", ErrInvalidStorageConfigs)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}
