// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into a scheme and a credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidAuthorizationScheme is returned when the scheme of the
	// "Authorization" header is not the one the route expects.
	ErrInvalidAuthorizationScheme = errors.New("unexpected `Authorization` scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request binding errors.
var (
	// ErrMalformedBody is returned when the request body is not valid JSON.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrFieldRequired is wrapped by [ParameterError] when a parameter is absent.
	ErrFieldRequired = errors.New("field required")

	// ErrNotANumber is wrapped by [ParameterError] when a parameter cannot be
	// parsed as a finite floating point number.
	ErrNotANumber = errors.New("value is not a valid number")

	// ErrNotAnObject is wrapped by [ParameterError] when a JSON body is valid
	// but is not an object.
	ErrNotAnObject = errors.New("value is not a valid object")

	// ErrResultOutOfRange is returned when the computed result overflows.
	ErrResultOutOfRange = errors.New("result is out of range")
)

// Where a [ParameterError] was found.
const (
	locationQuery  = "query"
	locationHeader = "header"
	locationBody   = "body"
	locationForm   = "form"
)

// ParameterError describes a missing or malformed request parameter.
type ParameterError struct {
	// Location is one of "query", "header", "body" or "form".
	Location string
	// Name is the parameter name. Empty means the whole location.
	Name string
	Err  error
}

func (e *ParameterError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Location, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Location, e.Name, e.Err)
}

func (e *ParameterError) Unwrap() error {
	return e.Err
}
