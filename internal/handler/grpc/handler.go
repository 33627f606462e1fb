package grpc

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/metrics"
	"github.com/MKhiriev/go-param-auth/internal/service"
	"github.com/MKhiriev/go-param-auth/models"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It implements [CalculatorServer] on top of the service layer and provides
// the unary interceptors the server is built with.
type Handler struct {
	services *service.Services

	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. m may be nil, in which case no metrics
// are recorded.
func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}

// Register adds the calculator service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&CalculatorServiceDesc, h)
}

// Sum adds the operands without checking credentials.
func (h *Handler) Sum(ctx context.Context, in *models.SumRequest) (*models.SumResponse, error) {
	result, err := h.sum(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}

	return &models.SumResponse{Result: result, Method: models.MethodGRPC}, nil
}

// AuthenticatedSum authenticates the caller from metadata before adding the
// operands.
func (h *Handler) AuthenticatedSum(ctx context.Context, in *models.SumRequest) (*models.AuthResponse, error) {
	caller, err := h.authenticate(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("request rejected")
		return nil, toStatus(err)
	}

	result, err := h.sum(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}

	return &models.AuthResponse{
		Result:        result,
		AuthMethod:    caller.method,
		Username:      caller.username,
		Authenticated: true,
	}, nil
}

// sum stops early when the call deadline set by the server or the caller has
// already passed.
func (h *Handler) sum(ctx context.Context, in *models.SumRequest) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if in.Num1 == nil {
		return 0, fmt.Errorf("num1: %w", ErrFieldRequired)
	}
	if in.Num2 == nil {
		return 0, fmt.Errorf("num2: %w", ErrFieldRequired)
	}

	result := h.services.SumService.Sum(ctx, *in.Num1, *in.Num2)
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrResultOutOfRange
	}
	return result, nil
}
