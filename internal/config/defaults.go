package config

import "time"

// Demo credentials. They match the values printed by the index endpoint and
// are meant for local experiments only.
const (
	DefaultAPIKey        = "my-secret-api-key-123"
	DefaultSecondAPIKey  = "another-valid-key-456"
	DefaultBearerToken   = "valid-bearer-token-xyz"
	DefaultBasicUsername = "admin"
	DefaultBasicPassword = "secret123"
)

// Disabled switches off a feature whose setting would otherwise be filled
// from the defaults: the HTTP or gRPC listener, or token issuing when used as
// the sign key.
const Disabled = "off"

// Defaults returns the configuration used for every field left empty by the
// other sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       "dev",
			LogLevel:      "debug",
			TokenSignKey:  "go-param-auth-demo-sign-key",
			TokenIssuer:   "go-param-auth",
			TokenDuration: 30 * time.Minute,
		},
		Auth: Auth{
			APIKeys:       []string{DefaultAPIKey, DefaultSecondAPIKey},
			BearerToken:   DefaultBearerToken,
			BasicUsername: DefaultBasicUsername,
			BasicPassword: DefaultBasicPassword,
		},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
			RateBurst:      10,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 10 * time.Second,
		},
	}
}
