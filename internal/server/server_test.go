package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/handler"
	myGRPC "github.com/MKhiriev/go-param-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/service"
	"github.com/MKhiriev/go-param-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestHandlers(t *testing.T, cfg *config.StructuredConfig) *handler.Handlers {
	t.Helper()

	services, err := service.NewServices(*cfg, models.NewAppBuildInfo("", "", ""), nil, logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, *cfg, nil, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_InvalidGRPCAddress(t *testing.T) {
	cfg := config.Defaults()
	cfg.Server.HTTPAddress = ""
	cfg.Server.GRPCAddress = "127.0.0.1:0"
	handlers := newTestHandlers(t, cfg)

	_, err := NewServer(handlers, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())

	assert.Error(t, err)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}

	s := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	assert.Equal(t, "127.0.0.1:0", s.server.Addr)
	assert.Equal(t, 5*time.Second, s.server.ReadHeaderTimeout)
	assert.Equal(t, 5*time.Second, s.server.ReadTimeout)
	assert.Equal(t, 5*time.Second, s.server.WriteTimeout)
}

func TestServer_RunServesGRPCUntilCancelled(t *testing.T) {
	cfg := config.Defaults()
	cfg.Server.HTTPAddress = "127.0.0.1:0"
	cfg.Server.GRPCAddress = "127.0.0.1:0"

	srv, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	conn, err := grpc.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	req := models.NewSumRequest(2, 3)
	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	resp, err := myGRPC.NewCalculatorClient(conn).Sum(callCtx, &req)
	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.Result)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_NothingToRun(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersAreCreated)
}

func TestWithTimeout(t *testing.T) {
	interceptor := withTimeout(config.Server{RequestTimeout: time.Minute})

	t.Run("adds deadline", func(t *testing.T) {
		_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil, nil
		})
		require.NoError(t, err)
	})

	t.Run("keeps existing deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		want, _ := ctx.Deadline()

		_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
			got, _ := ctx.Deadline()
			assert.Equal(t, want, got)
			return nil, nil
		})
		require.NoError(t, err)
	})
}
