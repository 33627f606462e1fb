package grpc

import (
	"context"
	"path"
	"time"

	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const metadataTraceID = "x-trace-id"

// UnaryInterceptors returns the interceptor chain the server is built with,
// outermost first.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
	}
}

// withTraceID attaches a child logger carrying trace_id to the context. The
// id is taken from x-trace-id metadata or generated, and is sent back as a
// response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(metadataTraceID); len(ids) > 0 && ids[0] != "" {
			traceID = ids[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(metadataTraceID, traceID))

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	h.metrics.ObserveGRPCRequest(path.Base(info.FullMethod), status.Code(err).String())
	return resp, err
}

func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().
				Str("method", info.FullMethod).
				Interface("panic", r).
				Msg("gRPC call panic recovered")
			err = status.Error(codes.Internal, codes.Internal.String())
		}
	}()

	return handler(ctx, req)
}
