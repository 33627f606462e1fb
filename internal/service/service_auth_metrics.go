package service

import (
	"context"

	"github.com/MKhiriev/go-param-auth/internal/metrics"
	"github.com/MKhiriev/go-param-auth/models"
)

// Scheme labels recorded by AuthMetricsService.
const (
	schemeAPIKey = "api_key"
	schemeBearer = "bearer"
	schemeBasic  = "basic"
	schemeToken  = "token"
)

// AuthMetricsService counts authentication outcomes per scheme.
type AuthMetricsService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

func NewAuthMetricsService(m *metrics.Metrics) AuthServiceWrapper {
	return &AuthMetricsService{metrics: m}
}

func (s *AuthMetricsService) VerifyAPIKey(ctx context.Context, apiKey string) error {
	err := s.inner.VerifyAPIKey(ctx, apiKey)
	s.metrics.ObserveAuthAttempt(schemeAPIKey, err)
	return err
}

func (s *AuthMetricsService) VerifyBearerToken(ctx context.Context, token string) (models.Token, error) {
	parsed, err := s.inner.VerifyBearerToken(ctx, token)
	s.metrics.ObserveAuthAttempt(schemeBearer, err)
	return parsed, err
}

func (s *AuthMetricsService) VerifyBasic(ctx context.Context, username, password string) (string, error) {
	user, err := s.inner.VerifyBasic(ctx, username, password)
	s.metrics.ObserveAuthAttempt(schemeBasic, err)
	return user, err
}

func (s *AuthMetricsService) IssueToken(ctx context.Context, username, password string) (models.Token, error) {
	token, err := s.inner.IssueToken(ctx, username, password)
	s.metrics.ObserveAuthAttempt(schemeToken, err)
	return token, err
}

func (s *AuthMetricsService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}
