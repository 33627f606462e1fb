// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Labels reported in [SumResponse.Method] describing where the operands came from.
const (
	MethodQueryParameters  = "query_parameters"
	MethodRequestBody      = "request_body"
	MethodHeaderParameters = "header_parameters"
	MethodGRPC             = "grpc"
)

// SumRequest carries the two operands of a sum in a JSON request body.
//
// Both fields are pointers so that an absent operand can be told apart from
// an explicit zero; the validator rejects a request where either is nil.
type SumRequest struct {
	// Num1 is the first operand.
	Num1 *float64 `json:"num1" validate:"required"`

	// Num2 is the second operand.
	Num2 *float64 `json:"num2" validate:"required"`
}

// NewSumRequest builds a [SumRequest] from plain values.
func NewSumRequest(num1, num2 float64) SumRequest {
	return SumRequest{Num1: &num1, Num2: &num2}
}

// Operands returns both operands, treating absent ones as zero.
func (r SumRequest) Operands() (float64, float64) {
	var a, b float64
	if r.Num1 != nil {
		a = *r.Num1
	}
	if r.Num2 != nil {
		b = *r.Num2
	}
	return a, b
}

// SumResponse is returned by the unauthenticated sum endpoints.
type SumResponse struct {
	// Result is num1 + num2.
	Result float64 `json:"result"`

	// Method names the parameter passing style, e.g. "query_parameters".
	Method string `json:"method"`
}
