package config

import (
	"fmt"
)

// ClientConfig is the client-side view of [StructuredConfig]: where to find
// the server and which credentials to present.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter Adapter
	// Credentials are the secrets sent to the protected endpoints.
	Credentials Auth
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

// NewClientConfig maps the fields relevant to the client out of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter:     cfg.Adapter,
		Credentials: cfg.Auth,
		LogLevel:    cfg.App.LogLevel,
	}
}
