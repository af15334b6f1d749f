// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variable names come from the
// `env`/`envPrefix` tags on [StructuredConfig], e.g. VAULT_KDF_ITERATIONS or
// STORAGE_FILE_PATH. Unset variables leave fields at their zero value so the
// next layer can supply them.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
