package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/metrics"
	"github.com/MKhiriev/go-param-auth/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	m := metrics.New()

	services, err := NewServices(*config.Defaults(), noBuildInfo, m, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.SumService)
	require.NotNil(t, services.AuthService)
	assert.Equal(t, "dev", services.AppInfoService.GetAppVersion(context.Background()))

	ctx := context.Background()
	assert.NoError(t, services.AuthService.VerifyAPIKey(ctx, config.DefaultAPIKey))
	assert.ErrorIs(t, services.AuthService.VerifyAPIKey(ctx, "bad"), ErrInvalidAPIKey)
	_, err = services.AuthService.VerifyBasic(ctx, "admin", "secret123")
	assert.NoError(t, err)

	count, err := testutil.GatherAndCount(m.Registry(), "param_auth_auth_attempts_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNewServices_NoVersion(t *testing.T) {
	cfg := config.Defaults()
	cfg.App.Version = ""

	services, err := NewServices(*cfg, models.NewAppBuildInfo("", "", ""), nil, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAuthMetricsService_Delegates(t *testing.T) {
	inner := newTestAuthService(t)
	svc := NewAuthMetricsService(metrics.New()).Wrap(inner)
	ctx := context.Background()

	_, err := svc.VerifyBearerToken(ctx, config.DefaultBearerToken)
	assert.NoError(t, err)

	token, err := svc.IssueToken(ctx, "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", token.Username)

	_, err = svc.VerifyBasic(ctx, "admin", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
