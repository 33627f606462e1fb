package service

import (
	"context"

	"github.com/MKhiriev/go-param-auth/internal/logger"
)

type sumService struct {
	logger *logger.Logger
}

func NewSumService(logger *logger.Logger) SumService {
	return &sumService{logger: logger}
}

// Sum returns num1 + num2 using IEEE-754 double precision.
func (s *sumService) Sum(ctx context.Context, num1, num2 float64) float64 {
	return num1 + num2
}

// Combine returns (num1 + num2) * multiplier.
func (s *sumService) Combine(ctx context.Context, num1, num2, multiplier float64) float64 {
	result := s.Sum(ctx, num1, num2) * multiplier

	logger.FromContext(ctx).Debug().
		Float64("num1", num1).
		Float64("num2", num2).
		Float64("multiplier", multiplier).
		Float64("result", result).
		Msg("combined operation computed")

	return result
}
