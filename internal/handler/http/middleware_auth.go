package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
)

const (
	schemeBearer = "Bearer"
	schemeBasic  = "Basic"
)

// Values of the WWW-Authenticate header sent with a 401.
const (
	challengeNone   = ""
	challengeBearer = schemeBearer
	challengeBasic  = schemeBasic
)

// Details of a 401 answer, one per scheme.
const (
	detailInvalidAPIKeyHeader = "Invalid or missing API Key"
	detailInvalidAPIKeyQuery  = "Invalid API Key"
	detailInvalidBearerToken  = "Invalid bearer token"
	detailInvalidCredentials  = "Invalid credentials"
)

// apiKeyHeaderAuth accepts requests whose X-API-Key header holds one of the
// configured keys.
func (h *Handler) apiKeyHeaderAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := h.services.AuthService.VerifyAPIKey(ctx, r.Header.Get(headerAPIKey)); err != nil {
			unauthorized(w, r, detailInvalidAPIKeyHeader, challengeNone, err)
			return
		}

		ctx = utils.WithAuthMethod(ctx, models.AuthMethodAPIKeyHeader)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// apiKeyQueryAuth is the api_key query parameter variant of apiKeyHeaderAuth.
func (h *Handler) apiKeyQueryAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := h.services.AuthService.VerifyAPIKey(ctx, r.URL.Query().Get(paramAPIKey)); err != nil {
			unauthorized(w, r, detailInvalidAPIKeyQuery, challengeNone, err)
			return
		}

		ctx = utils.WithAuthMethod(ctx, models.AuthMethodAPIKeyQuery)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerAuth enforces "Authorization: Bearer <token>". Tokens issued by the
// token endpoint carry a username, which is stored in the context as well.
func (h *Handler) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"), schemeBearer)
		if err != nil {
			unauthorized(w, r, detailInvalidBearerToken, challengeBearer, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.VerifyBearerToken(ctx, tokenString)
		if err != nil {
			unauthorized(w, r, detailInvalidBearerToken, challengeBearer, err)
			return
		}

		ctx = utils.WithAuthMethod(ctx, models.AuthMethodBearerToken)
		if token.Username != "" {
			ctx = utils.WithUsername(ctx, token.Username)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// basicAuth enforces "Authorization: Basic base64(username:password)".
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, err := getBasicCredentials(r.Header.Get("Authorization"))
		if err != nil {
			unauthorized(w, r, detailInvalidCredentials, challengeBasic, err)
			return
		}

		ctx := r.Context()
		username, err = h.services.AuthService.VerifyBasic(ctx, username, password)
		if err != nil {
			unauthorized(w, r, detailInvalidCredentials, challengeBasic, err)
			return
		}

		ctx = utils.WithAuthMethod(ctx, models.AuthMethodBasicAuth)
		ctx = utils.WithUsername(ctx, username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// unauthorized logs the rejection and answers 401 with the given detail.
// A non-empty challenge is sent back in the WWW-Authenticate header.
func unauthorized(w http.ResponseWriter, r *http.Request, detail, challenge string, err error) {
	logger.FromRequest(r).Err(err).Msg("request rejected")

	if challenge != challengeNone {
		w.Header().Set("WWW-Authenticate", challenge)
	}
	utils.WriteError(w, detail, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the credential from a raw "Authorization"
// header value of the form "<scheme> <credential>". The scheme is matched
// case-insensitively.
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] if the header is empty.
//   - [ErrInvalidAuthorizationHeader] if there is no space separated credential.
//   - [ErrInvalidAuthorizationScheme] if the scheme is not the expected one.
//   - [ErrEmptyToken] if the credential is blank.
func getTokenFromAuthHeader(authHeader, scheme string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(parts[0], scheme) {
		return "", ErrInvalidAuthorizationScheme
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

var errMalformedBasicCredentials = errors.New("malformed basic credentials")

// getBasicCredentials decodes the "username:password" pair of a basic
// "Authorization" header. The password may itself contain colons.
func getBasicCredentials(authHeader string) (string, string, error) {
	encoded, err := getTokenFromAuthHeader(authHeader, schemeBasic)
	if err != nil {
		return "", "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", errMalformedBasicCredentials
	}

	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", errMalformedBasicCredentials
	}

	return username, password, nil
}
