// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and Authorization header parsing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthMethodCtxKey is the key under which the authentication middleware
// stores the label of the scheme that accepted the request
// (e.g. "api_key_header").
var AuthMethodCtxKey = contextKey("authMethod")

// UsernameCtxKey is the key under which the authentication middleware stores
// the authenticated username. Only schemes that carry a username (basic auth,
// issued tokens) set it.
var UsernameCtxKey = contextKey("username")

// WithAuthMethod returns a copy of ctx carrying the given auth method label.
func WithAuthMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, AuthMethodCtxKey, method)
}

// WithUsername returns a copy of ctx carrying the authenticated username.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UsernameCtxKey, username)
}

// GetAuthMethodFromContext retrieves the auth method label from the context.
//
// Returns the label and an ok flag:
//   - ok == true  : value is found and is a non-empty string
//   - ok == false : value is missing, empty or has an unexpected type
func GetAuthMethodFromContext(ctx context.Context) (string, bool) {
	method, ok := ctx.Value(AuthMethodCtxKey).(string)
	return method, ok && method != ""
}

// GetUsernameFromContext retrieves the authenticated username from the
// context. The ok flag is false when no username was stored.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
