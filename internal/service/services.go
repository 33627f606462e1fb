package service

import (
	"fmt"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/metrics"
	"github.com/MKhiriev/go-param-auth/models"
)

type Services struct {
	SumService     SumService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(cfg config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(cfg.Auth, cfg.App, logger)

	return &Services{
		SumService:     NewSumService(logger),
		AuthService:    NewAuthMetricsService(m).Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
