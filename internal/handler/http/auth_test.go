// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/mock"
	"github.com/MKhiriev/go-param-auth/internal/service"
	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthAPIKeyHeader(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		apiKey     string
		query      string
		wantStatus int
		wantDetail string
	}{
		{name: "first key", apiKey: config.DefaultAPIKey, query: "num1=5&num2=10", wantStatus: http.StatusOK},
		{name: "second key", apiKey: config.DefaultSecondAPIKey, query: "num1=5&num2=10", wantStatus: http.StatusOK},
		{name: "wrong key", apiKey: "wrong", query: "num1=5&num2=10", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid or missing API Key"},
		{name: "missing key", query: "num1=5&num2=10", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid or missing API Key"},
		{name: "auth before binding", apiKey: "wrong", query: "num1=abc", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid or missing API Key"},
		{name: "bad parameters", apiKey: config.DefaultAPIKey, query: "num1=5", wantStatus: http.StatusUnprocessableEntity, wantDetail: "query num2: field required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/api-key-header?"+tt.query, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}

			rec := do(t, router, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantDetail, errorDetail(t, rec))
				assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
				return
			}

			resp := decode[models.AuthResponse](t, rec)
			assert.Equal(t, models.AuthResponse{Result: 15, AuthMethod: models.AuthMethodAPIKeyHeader, Authenticated: true}, resp)
		})
	}
}

func TestAuthAPIKeyQuery(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantDetail string
	}{
		{name: "valid key", query: "num1=5&num2=10&api_key=" + config.DefaultAPIKey, wantStatus: http.StatusOK},
		{name: "wrong key", query: "num1=5&num2=10&api_key=wrong", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid API Key"},
		{name: "missing key", query: "num1=5&num2=10", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid API Key"},
		{name: "key in header is ignored", query: "num1=5&num2=10", wantStatus: http.StatusUnauthorized, wantDetail: "Invalid API Key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/api-key-query?"+tt.query, nil)
			req.Header.Set("X-API-Key", config.DefaultAPIKey)

			rec := do(t, router, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantDetail, errorDetail(t, rec))
				return
			}

			resp := decode[models.AuthResponse](t, rec)
			assert.Equal(t, models.AuthResponse{Result: 15, AuthMethod: models.AuthMethodAPIKeyQuery, Authenticated: true}, resp)
		})
	}
}

func TestAuthBearer(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "static token", authorization: "Bearer " + config.DefaultBearerToken, wantStatus: http.StatusOK},
		{name: "lower case scheme", authorization: "bearer " + config.DefaultBearerToken, wantStatus: http.StatusOK},
		{name: "wrong token", authorization: "Bearer wrong", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authorization: "Token " + config.DefaultBearerToken, wantStatus: http.StatusUnauthorized},
		{name: "no token", authorization: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/bearer", jsonBody(t, models.NewSumRequest(5, 10)))
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}

			rec := do(t, router, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "Invalid bearer token", errorDetail(t, rec))
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				return
			}

			resp := decode[models.AuthResponse](t, rec)
			assert.Equal(t, models.AuthResponse{Result: 15, AuthMethod: models.AuthMethodBearerToken, Authenticated: true}, resp)
		})
	}
}

func TestAuthBearer_IssuedToken(t *testing.T) {
	cfg := config.Defaults()
	router := newTestRouter(t, cfg)

	token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, "admin", cfg.App.TokenDuration, cfg.App.TokenSignKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/bearer", jsonBody(t, models.NewSumRequest(1, 2)))
	req.Header.Set("Authorization", "Bearer "+token.String())

	rec := do(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[models.AuthResponse](t, rec)
	assert.Equal(t, 3.0, resp.Result)
	assert.Equal(t, "admin", resp.Username)
}

func TestAuthBasic(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		username   string
		password   string
		raw        string
		wantStatus int
	}{
		{name: "valid", username: config.DefaultBasicUsername, password: config.DefaultBasicPassword, wantStatus: http.StatusOK},
		{name: "wrong password", username: config.DefaultBasicUsername, password: "wrong", wantStatus: http.StatusUnauthorized},
		{name: "wrong username", username: "root", password: config.DefaultBasicPassword, wantStatus: http.StatusUnauthorized},
		{name: "not base64", raw: "Basic !!!", wantStatus: http.StatusUnauthorized},
		{name: "bearer scheme", raw: "Bearer " + config.DefaultBearerToken, wantStatus: http.StatusUnauthorized},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/basic", jsonBody(t, models.NewSumRequest(5, 10)))
			switch {
			case tt.raw != "":
				req.Header.Set("Authorization", tt.raw)
			case tt.username != "":
				req.SetBasicAuth(tt.username, tt.password)
			}

			rec := do(t, router, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, "Invalid credentials", errorDetail(t, rec))
				assert.Equal(t, "Basic", rec.Header().Get("WWW-Authenticate"))
				return
			}

			resp := decode[models.AuthResponse](t, rec)
			assert.Equal(t, models.AuthResponse{
				Result:        15,
				AuthMethod:    models.AuthMethodBasicAuth,
				Username:      config.DefaultBasicUsername,
				Authenticated: true,
			}, resp)
		})
	}
}

func TestAuthBasic_BadBodyAfterAuth(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/basic", jsonBody(t, map[string]float64{"num1": 1}))
	req.SetBasicAuth(config.DefaultBasicUsername, config.DefaultBasicPassword)

	rec := do(t, router, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "body num2: field required", errorDetail(t, rec))
}

// newMockedAuthHandler returns a handler whose auth service is a gomock mock.
func newMockedAuthHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)

	h := NewHandler(&service.Services{AuthService: authService}, *config.Defaults(), nil, logger.Nop())
	return h, authService
}

func TestBearerAuth_StoresUsernameFromToken(t *testing.T) {
	h, authService := newMockedAuthHandler(t)

	authService.EXPECT().
		VerifyBearerToken(gomock.Any(), "issued-token").
		Return(models.Token{SignedString: "issued-token", Username: "alice"}, nil)

	var method, username string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, _ = utils.GetAuthMethodFromContext(r.Context())
		username, _ = utils.GetUsernameFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/bearer", nil)
	req.Header.Set("Authorization", "Bearer issued-token")
	h.bearerAuth(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, models.AuthMethodBearerToken, method)
	assert.Equal(t, "alice", username)
}

func TestBasicAuth_ServiceNotCalledForMalformedHeader(t *testing.T) {
	h, _ := newMockedAuthHandler(t)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	req := httptest.NewRequest(http.MethodPost, "/auth/basic", nil)
	req.Header.Set("Authorization", "Basic bm8tY29sb24=") // "no-colon"
	rec := httptest.NewRecorder()
	h.basicAuth(next).ServeHTTP(rec, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyHeaderAuth_ServiceError(t *testing.T) {
	h, authService := newMockedAuthHandler(t)

	authService.EXPECT().VerifyAPIKey(gomock.Any(), "k").Return(service.ErrInvalidAPIKey)

	req := httptest.NewRequest(http.MethodGet, "/auth/api-key-header", nil)
	req.Header.Set("X-API-Key", "k")
	rec := httptest.NewRecorder()
	h.apiKeyHeaderAuth(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		scheme  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc", scheme: schemeBearer, want: "abc"},
		{name: "case insensitive scheme", header: "BEARER abc", scheme: schemeBearer, want: "abc"},
		{name: "token with spaces is trimmed", header: "Bearer  abc ", scheme: schemeBearer, want: "abc"},
		{name: "empty header", header: "", scheme: schemeBearer, wantErr: ErrEmptyAuthorizationHeader},
		{name: "no credential", header: "Bearer", scheme: schemeBearer, wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank credential", header: "Bearer   ", scheme: schemeBearer, wantErr: ErrEmptyToken},
		{name: "other scheme", header: "Basic abc", scheme: schemeBearer, wantErr: ErrInvalidAuthorizationScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header, tt.scheme)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBasicCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("admin", "pa:ss")

	username, password, err := getBasicCredentials(req.Header.Get("Authorization"))

	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "pa:ss", password)
}
