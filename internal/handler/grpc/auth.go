package grpc

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-param-auth/models"
	"google.golang.org/grpc/metadata"
)

// Metadata keys. gRPC lower-cases all keys.
const (
	metadataAPIKey        = "x-api-key"
	metadataAuthorization = "authorization"
)

type caller struct {
	method   string
	username string
}

// authenticate checks the credentials in the incoming metadata. An x-api-key
// entry takes precedence over authorization.
func (h *Handler) authenticate(ctx context.Context) (caller, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	authService := h.services.AuthService

	if keys := md.Get(metadataAPIKey); len(keys) > 0 {
		if err := authService.VerifyAPIKey(ctx, keys[0]); err != nil {
			return caller{}, err
		}
		return caller{method: models.AuthMethodAPIKeyHeader}, nil
	}

	values := md.Get(metadataAuthorization)
	if len(values) == 0 {
		return caller{}, ErrMissingCredentials
	}

	scheme, credential, ok := strings.Cut(values[0], " ")
	credential = strings.TrimSpace(credential)
	if !ok || credential == "" {
		return caller{}, ErrInvalidAuthorization
	}

	switch {
	case strings.EqualFold(scheme, "Bearer"):
		token, err := authService.VerifyBearerToken(ctx, credential)
		if err != nil {
			return caller{}, err
		}
		return caller{method: models.AuthMethodBearerToken, username: token.Username}, nil

	case strings.EqualFold(scheme, "Basic"):
		decoded, err := base64.StdEncoding.DecodeString(credential)
		if err != nil {
			return caller{}, fmt.Errorf("%w: %w", ErrInvalidAuthorization, err)
		}
		username, password, ok := strings.Cut(string(decoded), ":")
		if !ok {
			return caller{}, ErrInvalidAuthorization
		}
		username, err = authService.VerifyBasic(ctx, username, password)
		if err != nil {
			return caller{}, err
		}
		return caller{method: models.AuthMethodBasicAuth, username: username}, nil
	}

	return caller{}, ErrInvalidAuthorization
}
