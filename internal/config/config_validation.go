// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Auth.APIKeys) == 0 {
		return fmt.Errorf("%w: no API keys", ErrInvalidAuthConfigs)
	}
	for _, key := range cfg.Auth.APIKeys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: empty API key", ErrInvalidAuthConfigs)
		}
	}

	if cfg.Auth.BearerToken == "" {
		return fmt.Errorf("%w: empty bearer token", ErrInvalidAuthConfigs)
	}

	if cfg.Auth.BasicUsername == "" || (cfg.Auth.BasicPassword == "" && cfg.Auth.BasicPasswordHash == "") {
		return fmt.Errorf("%w: incomplete basic credentials", ErrInvalidAuthConfigs)
	}

	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0) {
		return fmt.Errorf("%w: token issuer and positive duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst == 0 {
		return fmt.Errorf("%w: rate limit needs a positive burst", ErrInvalidServerConfigs)
	}

	return nil
}

// validate checks the subset of settings the client needs.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if len(cfg.Credentials.APIKeys) == 0 || cfg.Credentials.BearerToken == "" || cfg.Credentials.BasicUsername == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
