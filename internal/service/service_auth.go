// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It checks presented credentials against the static values from the
// configuration and issues short-lived JWTs to basic-auth users.
type authService struct {
	// apiKeys is the set of accepted API keys.
	apiKeys [][]byte

	// bearerToken is the static token accepted as a bearer credential.
	bearerToken []byte

	// basicUsername and basicPassword are the accepted basic credentials.
	basicUsername []byte
	basicPassword []byte

	// basicPasswordHash is a bcrypt hash that replaces basicPassword when set.
	basicPasswordHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Empty disables both issuing and accepting JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the credentials in auth
// and the token parameters in app.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(auth config.Auth, app config.App, logger *logger.Logger) AuthService {
	apiKeys := make([][]byte, 0, len(auth.APIKeys))
	for _, key := range auth.APIKeys {
		apiKeys = append(apiKeys, []byte(key))
	}

	return &authService{
		apiKeys:           apiKeys,
		bearerToken:       []byte(auth.BearerToken),
		basicUsername:     []byte(auth.BasicUsername),
		basicPassword:     []byte(auth.BasicPassword),
		basicPasswordHash: []byte(auth.BasicPasswordHash),
		tokenSignKey:      app.TokenSignKey,
		tokenIssuer:       app.TokenIssuer,
		tokenDuration:     app.TokenDuration,
		logger:            logger,
	}
}

// VerifyAPIKey reports whether apiKey is one of the configured keys.
//
// Every configured key is compared so the time taken does not depend on
// which key matched. Returns ErrInvalidAPIKey for an empty or unknown key.
func (a *authService) VerifyAPIKey(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return ErrInvalidAPIKey
	}

	presented := []byte(apiKey)
	matched := 0
	for _, key := range a.apiKeys {
		matched |= subtle.ConstantTimeCompare(presented, key)
	}

	if matched != 1 {
		logger.FromContext(ctx).Debug().Msg("unknown api key presented")
		return ErrInvalidAPIKey
	}

	return nil
}

// VerifyBearerToken accepts either the configured static token or a JWT
// previously issued by IssueToken.
//
// The static token yields a Token with only SignedString set. A JWT yields
// the decoded token including the username it was issued to.
func (a *authService) VerifyBearerToken(ctx context.Context, token string) (models.Token, error) {
	if token == "" {
		return models.Token{}, ErrInvalidBearerToken
	}

	if subtle.ConstantTimeCompare([]byte(token), a.bearerToken) == 1 {
		return models.Token{SignedString: token}, nil
	}

	if a.tokenSignKey == "" {
		return models.Token{}, ErrInvalidBearerToken
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("bearer token rejected")
		return models.Token{}, ErrInvalidBearerToken
	}

	return parsed, nil
}

// VerifyBasic checks a username and password pair.
//
// Both parts are always compared so a wrong username costs as much as a wrong
// password. When a bcrypt hash is configured the password is checked against
// it instead of the plain-text value.
//
// Returns the authenticated username or ErrInvalidCredentials.
func (a *authService) VerifyBasic(ctx context.Context, username, password string) (string, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), a.basicUsername) == 1

	var passwordOK bool
	if len(a.basicPasswordHash) > 0 {
		passwordOK = bcrypt.CompareHashAndPassword(a.basicPasswordHash, []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), a.basicPassword) == 1
	}

	if !usernameOK || !passwordOK {
		logger.FromContext(ctx).Debug().Str("username", username).Msg("basic credentials rejected")
		return "", ErrInvalidCredentials
	}

	return username, nil
}

// IssueToken exchanges basic credentials for a signed JWT.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns:
//   - ErrTokenIssuingOff if no sign key is configured.
//   - ErrInvalidCredentials if the credentials are wrong.
//   - ErrTokenCreationFailed wrapping the signing error otherwise.
func (a *authService) IssueToken(ctx context.Context, username, password string) (models.Token, error) {
	if a.tokenSignKey == "" {
		return models.Token{}, ErrTokenIssuingOff
	}

	if _, err := a.VerifyBasic(ctx, username, password); err != nil {
		return models.Token{}, err
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Info().
		Str("username", username).
		Time("expires_at", token.ExpiresAt.Time).
		Msg("token issued")

	return token, nil
}
