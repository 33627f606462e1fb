package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-param-auth/internal/config"
	myGRPC "github.com/MKhiriev/go-param-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-param-auth/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	interceptors := append(handler.UnaryInterceptors(), withTimeout(cfg))
	server := grpc.NewServer(
		grpc.ConnectionTimeout(cfg.RequestTimeout),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
	handler.Register(server)

	return &grpcServer{
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

// withTimeout bounds calls that arrive without a deadline by the request
// timeout.
func withTimeout(cfg config.Server) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok || cfg.RequestTimeout <= 0 {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
		return handler(ctx, req)
	}
}

func (g *grpcServer) RunServer() {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
