package service

import (
	"context"

	"github.com/MKhiriev/go-param-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type SumService interface {
	Sum(ctx context.Context, num1, num2 float64) float64
	Combine(ctx context.Context, num1, num2, multiplier float64) float64
}

type AuthService interface {
	VerifyAPIKey(ctx context.Context, apiKey string) error
	VerifyBearerToken(ctx context.Context, token string) (models.Token, error)
	VerifyBasic(ctx context.Context, username, password string) (string, error)
	IssueToken(ctx context.Context, username, password string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics or logging.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
