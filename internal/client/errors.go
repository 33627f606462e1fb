package client

import "errors"

var (
	ErrUnexpectedResult  = errors.New("unexpected result")
	ErrRejectionExpected = errors.New("request was expected to be rejected")
)
