// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-param-auth/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrMissingCredentials is returned when the metadata carries neither an
	// x-api-key nor an authorization entry.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidAuthorization is returned for an authorization entry that is
	// not "Bearer <token>" or "Basic <base64>".
	ErrInvalidAuthorization = errors.New("invalid authorization metadata")

	ErrFieldRequired    = errors.New("field required")
	ErrResultOutOfRange = errors.New("result is out of range")
)

var errorCodeMap = map[error]codes.Code{
	ErrMissingCredentials:         codes.Unauthenticated,
	ErrInvalidAuthorization:       codes.Unauthenticated,
	service.ErrInvalidAPIKey:      codes.Unauthenticated,
	service.ErrInvalidBearerToken: codes.Unauthenticated,
	service.ErrInvalidCredentials: codes.Unauthenticated,

	ErrFieldRequired:    codes.InvalidArgument,
	ErrResultOutOfRange: codes.OutOfRange,
}

// toStatus converts err into a gRPC status error. Context errors keep their
// own codes. Unknown errors become codes.Internal without leaking their text.
func toStatus(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return status.FromContextError(err).Err()
	}
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return status.Error(code, err.Error())
		}
	}
	return status.Error(codes.Internal, codes.Internal.String())
}
