package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-param-auth/internal/adapter"
	"github.com/MKhiriev/go-param-auth/internal/config"
	httpHandler "github.com/MKhiriev/go-param-auth/internal/handler/http"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/metrics"
	"github.com/MKhiriev/go-param-auth/internal/service"
	"github.com/MKhiriev/go-param-auth/models"
	"github.com/stretchr/testify/require"
)

// TestApp_RunAgainstServer runs the whole tour against the real router.
func TestApp_RunAgainstServer(t *testing.T) {
	cfg := config.Defaults()

	m := metrics.New()
	services, err := service.NewServices(*cfg, models.NewAppBuildInfo("1.0.0", "", ""), m, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(httpHandler.NewHandler(services, *cfg, m, logger.Nop()).Init())
	defer srv.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	app, err := NewApp(serverAdapter, cfg.Auth, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
}
