// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the environment layer of the configuration. Variables are
// named by the `env` and `envPrefix` tags of [StructuredConfig]; unset
// variables leave the corresponding field zero so that lower layers win in
// the merge.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.explicit.clipboardTTL = envSet("APP_CLIPBOARD_TTL")
	cfg.explicit.refresh = envSet("APP_REFRESH")

	return &cfg, nil
}

// envSet reports whether name holds a value. Empty counts as unset, as it
// does for env.ParseAs.
func envSet(name string) bool {
	v, ok := os.LookupEnv(name)
	return ok && v != ""
}
