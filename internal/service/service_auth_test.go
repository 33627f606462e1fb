// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "test-issuer"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	cfg := config.Defaults()
	cfg.App.TokenSignKey = testSignKey
	cfg.App.TokenIssuer = testIssuer
	cfg.App.TokenDuration = time.Minute
	return NewAuthService(cfg.Auth, cfg.App, logger.Nop())
}

// ─────────────────────────────────────────────
// VerifyAPIKey
// ─────────────────────────────────────────────

func TestAuthService_VerifyAPIKey(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "first key", key: config.DefaultAPIKey},
		{name: "second key", key: config.DefaultSecondAPIKey},
		{name: "empty", key: "", wantErr: ErrInvalidAPIKey},
		{name: "unknown", key: "wrong-key", wantErr: ErrInvalidAPIKey},
		{name: "prefix of valid key", key: "my-secret", wantErr: ErrInvalidAPIKey},
		{name: "case differs", key: "MY-SECRET-API-KEY-123", wantErr: ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyAPIKey(ctx, tt.key)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// VerifyBearerToken
// ─────────────────────────────────────────────

func TestAuthService_VerifyBearerToken_StaticToken(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.VerifyBearerToken(context.Background(), config.DefaultBearerToken)

	require.NoError(t, err)
	assert.Equal(t, config.DefaultBearerToken, token.String())
	assert.Empty(t, token.Username)
}

func TestAuthService_VerifyBearerToken_Rejected(t *testing.T) {
	svc := newTestAuthService(t)

	for _, token := range []string{"", "invalid", "valid-bearer-token", "not.a.jwt"} {
		_, err := svc.VerifyBearerToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidBearerToken, "token %q", token)
	}
}

func TestAuthService_VerifyBearerToken_IssuedToken(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	issued, err := svc.IssueToken(ctx, config.DefaultBasicUsername, config.DefaultBasicPassword)
	require.NoError(t, err)

	token, err := svc.VerifyBearerToken(ctx, issued.String())

	require.NoError(t, err)
	assert.Equal(t, config.DefaultBasicUsername, token.Username)
}

func TestAuthService_VerifyBearerToken_ExpiredToken(t *testing.T) {
	svc := newTestAuthService(t)

	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   config.DefaultBasicUsername,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = svc.VerifyBearerToken(context.Background(), signed)

	assert.ErrorIs(t, err, ErrInvalidBearerToken)
}

func TestAuthService_VerifyBearerToken_ForeignSignKey(t *testing.T) {
	svc := newTestAuthService(t)

	cfg := config.Defaults()
	cfg.App.TokenSignKey = "another-key"
	cfg.App.TokenIssuer = testIssuer
	other := NewAuthService(cfg.Auth, cfg.App, logger.Nop())

	issued, err := other.IssueToken(context.Background(), config.DefaultBasicUsername, config.DefaultBasicPassword)
	require.NoError(t, err)

	_, err = svc.VerifyBearerToken(context.Background(), issued.String())

	assert.ErrorIs(t, err, ErrInvalidBearerToken)
}

func TestAuthService_VerifyBearerToken_JWTDisabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.TokenSignKey = ""
	svc := NewAuthService(cfg.Auth, cfg.App, logger.Nop())

	_, err := svc.VerifyBearerToken(context.Background(), "a.b.c")

	assert.ErrorIs(t, err, ErrInvalidBearerToken)
}

// ─────────────────────────────────────────────
// VerifyBasic
// ─────────────────────────────────────────────

func TestAuthService_VerifyBasic(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid", username: "admin", password: "secret123"},
		{name: "wrong password", username: "admin", password: "wrong", wantErr: true},
		{name: "wrong username", username: "root", password: "secret123", wantErr: true},
		{name: "empty", wantErr: true},
		{name: "username case differs", username: "Admin", password: "secret123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := svc.VerifyBasic(ctx, tt.username, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, username)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, username)
		})
	}
}

func TestAuthService_VerifyBasic_PasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.Auth.BasicPasswordHash = string(hash)
	svc := NewAuthService(cfg.Auth, cfg.App, logger.Nop())
	ctx := context.Background()

	username, err := svc.VerifyBasic(ctx, "admin", "hashed-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", username)

	// the plain password is ignored once a hash is configured
	_, err = svc.VerifyBasic(ctx, "admin", config.DefaultBasicPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// IssueToken
// ─────────────────────────────────────────────

func TestAuthService_IssueToken(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.IssueToken(context.Background(), "admin", "secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, token.String())
	assert.Equal(t, "admin", token.Username)
	assert.Equal(t, testIssuer, token.Issuer)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Minute), token.ExpiresAt.Time, 5*time.Second)
}

func TestAuthService_IssueToken_WrongCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.IssueToken(context.Background(), "admin", "nope")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_IssueToken_Disabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.TokenSignKey = ""
	svc := NewAuthService(cfg.Auth, cfg.App, logger.Nop())

	_, err := svc.IssueToken(context.Background(), "admin", "secret123")

	assert.ErrorIs(t, err, ErrTokenIssuingOff)
}
