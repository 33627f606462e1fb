package models

// Labels reported in [AuthResponse.AuthMethod].
const (
	AuthMethodAPIKeyHeader = "api_key_header"
	AuthMethodAPIKeyQuery  = "api_key_query"
	AuthMethodBearerToken  = "bearer_token"
	AuthMethodBasicAuth    = "basic_auth"
)

// AuthResponse is returned by every endpoint under /auth.
type AuthResponse struct {
	Result        float64 `json:"result"`
	AuthMethod    string  `json:"auth_method"`
	Username      string  `json:"username,omitempty"`
	Authenticated bool    `json:"authenticated"`
}

// CombinedResponse is returned by /combined/all-methods, which reads the
// operands from the body, the multiplier from the query and the operation
// label from a header.
type CombinedResponse struct {
	Result        float64 `json:"result"`
	Operation     string  `json:"operation"`
	Multiplier    float64 `json:"multiplier"`
	Authenticated bool    `json:"authenticated"`
}

// TokenResponse follows the OAuth 2.0 token endpoint response shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// CombinedOptions holds the optional inputs of /combined/all-methods. A nil
// Multiplier or empty Operation lets the server apply its defaults.
type CombinedOptions struct {
	Multiplier *float64
	Operation  string
}
