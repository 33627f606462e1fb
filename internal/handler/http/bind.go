package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-param-auth/models"
	"github.com/go-playground/validator/v10"
)

const (
	paramNum1       = "num1"
	paramNum2       = "num2"
	paramMultiplier = "multiplier"
	paramAPIKey     = "api_key"

	headerNum1      = "X-Num1"
	headerNum2      = "X-Num2"
	headerAPIKey    = "X-API-Key"
	headerOperation = "X-Operation"

	defaultMultiplier = 1.0
	defaultOperation  = "sum"
)

// queryFloat reads a required numeric query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	values := r.URL.Query()
	if _, ok := values[name]; !ok {
		return 0, &ParameterError{Location: locationQuery, Name: name, Err: ErrFieldRequired}
	}
	return parseFloat(locationQuery, name, values.Get(name))
}

// optionalQueryFloat reads a numeric query parameter, falling back to def when
// it is absent.
func optionalQueryFloat(r *http.Request, name string, def float64) (float64, error) {
	values := r.URL.Query()
	if _, ok := values[name]; !ok {
		return def, nil
	}
	return parseFloat(locationQuery, name, values.Get(name))
}

// headerFloat reads a required numeric header.
func headerFloat(r *http.Request, name string) (float64, error) {
	values := r.Header.Values(name)
	if len(values) == 0 {
		return 0, &ParameterError{Location: locationHeader, Name: name, Err: ErrFieldRequired}
	}
	return parseFloat(locationHeader, name, values[0])
}

func parseFloat(location, name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParameterError{Location: location, Name: name, Err: ErrNotANumber}
	}
	return v, nil
}

// queryOperands reads num1 and num2 from the query string.
func queryOperands(r *http.Request) (float64, float64, error) {
	num1, err := queryFloat(r, paramNum1)
	if err != nil {
		return 0, 0, err
	}
	num2, err := queryFloat(r, paramNum2)
	if err != nil {
		return 0, 0, err
	}
	return num1, num2, nil
}

// sumRequestFields lists the body fields of [models.SumRequest] in the order
// they are reported. Keys match exactly, not case-insensitively.
var sumRequestFields = []string{paramNum1, paramNum2}

// decodeSumRequest decodes and validates a JSON [models.SumRequest] body.
//
// Syntax errors and trailing data after the object yield [ErrMalformedBody].
// A missing body, a missing field, a field of the wrong type or a body that is
// not an object yield a [ParameterError].
func (h *Handler) decodeSumRequest(r *http.Request) (models.SumRequest, error) {
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return models.SumRequest{}, &ParameterError{Location: locationBody, Err: ErrFieldRequired}
		}
		return models.SumRequest{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.SumRequest{}, fmt.Errorf("%w: unexpected data after the JSON object", ErrMalformedBody)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return models.SumRequest{}, &ParameterError{Location: locationBody, Err: ErrNotAnObject}
		}
		return models.SumRequest{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	var req models.SumRequest
	targets := map[string]**float64{paramNum1: &req.Num1, paramNum2: &req.Num2}
	for _, name := range sumRequestFields {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, targets[name]); err != nil {
			return models.SumRequest{}, &ParameterError{Location: locationBody, Name: name, Err: ErrNotANumber}
		}
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return models.SumRequest{}, &ParameterError{Location: locationBody, Name: validationErrs[0].Field(), Err: ErrFieldRequired}
		}
		return models.SumRequest{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return req, nil
}

// finite rejects results that cannot be represented in JSON.
func finite(result float64) error {
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return ErrResultOutOfRange
	}
	return nil
}
