// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields are mapped via the `env`, `envPrefix` and `envDefault` tags
// declared on [StructuredConfig] and its nested types, so the returned config
// already carries the service defaults.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{UseFieldNameByDefault: false}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
