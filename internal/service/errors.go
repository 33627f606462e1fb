package service

import "errors"

var (
	ErrInvalidAPIKey      = errors.New("invalid api key")
	ErrInvalidBearerToken = errors.New("invalid bearer token")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIssuingOff     = errors.New("token issuing is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
