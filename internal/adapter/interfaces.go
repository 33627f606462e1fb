// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-param-auth server.
//
// The primary abstraction is [ServerAdapter], which exposes one method per
// server endpoint. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrInvalidParameters] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-param-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-param-auth server.
// Implementations are responsible for serialisation, credential placement and
// mapping transport-level errors to the sentinel values defined in this
// package.
type ServerAdapter interface {
	// Index fetches the endpoint listing served at the root path.
	Index(ctx context.Context) (models.IndexResponse, error)

	// SumQuery sends the operands as query parameters.
	SumQuery(ctx context.Context, num1, num2 float64) (models.SumResponse, error)

	// SumBody sends the operands as a JSON body.
	SumBody(ctx context.Context, req models.SumRequest) (models.SumResponse, error)

	// SumHeader sends the operands in the X-Num1 and X-Num2 headers.
	SumHeader(ctx context.Context, num1, num2 float64) (models.SumResponse, error)

	// AuthAPIKeyHeader authenticates with the X-API-Key header.
	AuthAPIKeyHeader(ctx context.Context, apiKey string, num1, num2 float64) (models.AuthResponse, error)

	// AuthAPIKeyQuery authenticates with the api_key query parameter.
	AuthAPIKeyQuery(ctx context.Context, apiKey string, num1, num2 float64) (models.AuthResponse, error)

	// AuthBearer authenticates with "Authorization: Bearer <token>".
	AuthBearer(ctx context.Context, token string, req models.SumRequest) (models.AuthResponse, error)

	// AuthBasic authenticates with HTTP basic credentials.
	AuthBasic(ctx context.Context, username, password string, req models.SumRequest) (models.AuthResponse, error)

	// CombinedAllMethods reads operands from the body, the multiplier from the
	// query and the operation from the X-Operation header, authenticated by
	// the X-API-Key header.
	CombinedAllMethods(ctx context.Context, apiKey string, req models.SumRequest, opts models.CombinedOptions) (models.CombinedResponse, error)

	// IssueToken exchanges basic credentials for a bearer token.
	IssueToken(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
