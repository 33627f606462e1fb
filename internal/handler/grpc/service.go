package grpc

import (
	"context"

	"github.com/MKhiriev/go-param-auth/models"
	"google.golang.org/grpc"
)

const (
	ServiceName = "paramauth.Calculator"

	SumFullMethod              = "/" + ServiceName + "/Sum"
	AuthenticatedSumFullMethod = "/" + ServiceName + "/AuthenticatedSum"
)

// CalculatorServer is implemented by [Handler].
type CalculatorServer interface {
	Sum(context.Context, *models.SumRequest) (*models.SumResponse, error)
	AuthenticatedSum(context.Context, *models.SumRequest) (*models.AuthResponse, error)
}

// CalculatorServiceDesc describes paramauth.Calculator for grpc.Server.RegisterService.
var CalculatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Sum",
			Handler:    sumMethodHandler,
		},
		{
			MethodName: "AuthenticatedSum",
			Handler:    authenticatedSumMethodHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paramauth",
}

func sumMethodHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SumRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Sum(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SumFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CalculatorServer).Sum(ctx, req.(*models.SumRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func authenticatedSumMethodHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.SumRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).AuthenticatedSum(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AuthenticatedSumFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CalculatorServer).AuthenticatedSum(ctx, req.(*models.SumRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CalculatorClient calls paramauth.Calculator using the JSON codec.
type CalculatorClient struct {
	cc grpc.ClientConnInterface
}

func NewCalculatorClient(cc grpc.ClientConnInterface) *CalculatorClient {
	return &CalculatorClient{cc: cc}
}

func (c *CalculatorClient) Sum(ctx context.Context, in *models.SumRequest, opts ...grpc.CallOption) (*models.SumResponse, error) {
	out := new(models.SumResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, SumFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CalculatorClient) AuthenticatedSum(ctx context.Context, in *models.SumRequest, opts ...grpc.CallOption) (*models.AuthResponse, error) {
	out := new(models.AuthResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, AuthenticatedSumFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
