// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFile reads the safe secret from the file named by
// APP_SAFE_SECRET_FILE, the way container secrets are usually mounted.
type secretFile struct {
	Secret string `env:"APP_SAFE_SECRET_FILE,file"`
}

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig]. When APP_SAFE_SECRET is unset the
// secret is loaded from APP_SAFE_SECRET_FILE instead.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	if cfg.App.Secret != "" {
		return nil
	}

	var sf secretFile
	if err := env.Parse(&sf); err != nil {
		return fmt.Errorf("error getting env configs: safe secret file: %w", err)
	}
	cfg.App.Secret = strings.TrimRight(sf.Secret, "\r\n")

	return nil
}
