package service

import (
	"context"
	"math"
	"testing"

	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestSumService_Sum(t *testing.T) {
	svc := NewSumService(logger.Nop())
	ctx := context.Background()
	tenth, fifth := 0.1, 0.2

	tests := []struct {
		name       string
		num1, num2 float64
		want       float64
	}{
		{name: "integers", num1: 5, num2: 10, want: 15},
		{name: "fractions", num1: 2.5, num2: 0.25, want: 2.75},
		{name: "negative", num1: -3, num2: 1, want: -2},
		{name: "zeros", num1: 0, num2: 0, want: 0},
		{name: "ieee rounding", num1: tenth, num2: fifth, want: tenth + fifth},
		{name: "not exactly three tenths", num1: 0.1, num2: 0.2, want: 0.30000000000000004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Sum(ctx, tt.num1, tt.num2))
		})
	}
}

func TestSumService_Sum_Overflow(t *testing.T) {
	svc := NewSumService(logger.Nop())

	got := svc.Sum(context.Background(), math.MaxFloat64, math.MaxFloat64)

	assert.True(t, math.IsInf(got, 1))
}

func TestSumService_Combine(t *testing.T) {
	svc := NewSumService(logger.Nop())
	ctx := context.Background()

	assert.Equal(t, 30.0, svc.Combine(ctx, 5, 10, 2))
	assert.Equal(t, 15.0, svc.Combine(ctx, 5, 10, 1))
	assert.Equal(t, 0.0, svc.Combine(ctx, 5, 10, 0))
	assert.Equal(t, -7.5, svc.Combine(ctx, 5, 10, -0.5))
}
