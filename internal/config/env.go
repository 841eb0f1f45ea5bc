// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Mapping is driven by the
// `env` and `envPrefix` tags on [StructuredConfig] and its nested sections,
// so a field without a tag is left untouched and can still come from flags
// or the JSON file.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing environment config: %w", err)
	}

	return nil
}
