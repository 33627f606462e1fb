package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerAPIKey    = "X-API-Key"
	headerNum1      = "X-Num1"
	headerNum2      = "X-Num2"
	headerOperation = "X-Operation"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Index implements [ServerAdapter]. GET /
func (h *httpServerAdapter) Index(ctx context.Context) (models.IndexResponse, error) {
	var index models.IndexResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&index).
		Get("/")
	if err != nil {
		return models.IndexResponse{}, fmt.Errorf("index request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IndexResponse{}, err
	}

	return index, nil
}

// SumQuery implements [ServerAdapter]. GET /sum/query?num1=&num2=
func (h *httpServerAdapter) SumQuery(ctx context.Context, num1, num2 float64) (models.SumResponse, error) {
	var result models.SumResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(operandParams(num1, num2)).
		SetResult(&result).
		Get("/sum/query")
	if err != nil {
		return models.SumResponse{}, fmt.Errorf("sum query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SumResponse{}, err
	}

	return result, nil
}

// SumBody implements [ServerAdapter]. POST /sum/body
func (h *httpServerAdapter) SumBody(ctx context.Context, req models.SumRequest) (models.SumResponse, error) {
	var result models.SumResponse

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&result).
		Post("/sum/body")
	if err != nil {
		return models.SumResponse{}, fmt.Errorf("sum body request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SumResponse{}, err
	}

	return result, nil
}

// SumHeader implements [ServerAdapter]. GET /sum/header
func (h *httpServerAdapter) SumHeader(ctx context.Context, num1, num2 float64) (models.SumResponse, error) {
	var result models.SumResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerNum1, formatFloat(num1)).
		SetHeader(headerNum2, formatFloat(num2)).
		SetResult(&result).
		Get("/sum/header")
	if err != nil {
		return models.SumResponse{}, fmt.Errorf("sum header request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SumResponse{}, err
	}

	return result, nil
}

// AuthAPIKeyHeader implements [ServerAdapter]. GET /auth/api-key-header
func (h *httpServerAdapter) AuthAPIKeyHeader(ctx context.Context, apiKey string, num1, num2 float64) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerAPIKey, apiKey).
		SetQueryParams(operandParams(num1, num2)).
		SetResult(&result).
		Get("/auth/api-key-header")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("api key header request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return result, nil
}

// AuthAPIKeyQuery implements [ServerAdapter]. GET /auth/api-key-query
func (h *httpServerAdapter) AuthAPIKeyQuery(ctx context.Context, apiKey string, num1, num2 float64) (models.AuthResponse, error) {
	var result models.AuthResponse

	params := operandParams(num1, num2)
	params["api_key"] = apiKey

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/auth/api-key-query")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("api key query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return result, nil
}

// AuthBearer implements [ServerAdapter]. POST /auth/bearer
func (h *httpServerAdapter) AuthBearer(ctx context.Context, token string, req models.SumRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.jsonRequest(ctx, req).
		SetAuthToken(token).
		SetResult(&result).
		Post("/auth/bearer")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("bearer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return result, nil
}

// AuthBasic implements [ServerAdapter]. POST /auth/basic
func (h *httpServerAdapter) AuthBasic(ctx context.Context, username, password string, req models.SumRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.jsonRequest(ctx, req).
		SetBasicAuth(username, password).
		SetResult(&result).
		Post("/auth/basic")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("basic request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return result, nil
}

// CombinedAllMethods implements [ServerAdapter]. POST /combined/all-methods
func (h *httpServerAdapter) CombinedAllMethods(ctx context.Context, apiKey string, req models.SumRequest, opts models.CombinedOptions) (models.CombinedResponse, error) {
	var result models.CombinedResponse

	r := h.jsonRequest(ctx, req).
		SetHeader(headerAPIKey, apiKey).
		SetResult(&result)
	if opts.Multiplier != nil {
		r.SetQueryParam("multiplier", formatFloat(*opts.Multiplier))
	}
	if opts.Operation != "" {
		r.SetHeader(headerOperation, opts.Operation)
	}

	resp, err := r.Post("/combined/all-methods")
	if err != nil {
		return models.CombinedResponse{}, fmt.Errorf("combined request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CombinedResponse{}, err
	}

	return result, nil
}

// IssueToken implements [ServerAdapter]. POST /token with form credentials.
func (h *httpServerAdapter) IssueToken(ctx context.Context, username, password string) (models.TokenResponse, error) {
	var result models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&result).
		Post("/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return result, nil
}

// Version implements [ServerAdapter]. GET /api/version/
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func operandParams(num1, num2 float64) map[string]string {
	return map[string]string{
		"num1": formatFloat(num1),
		"num2": formatFloat(num2),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
