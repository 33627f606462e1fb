package http

import (
	"reflect"
	"strings"

	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/metrics"
	"github.com/MKhiriev/go-param-auth/internal/service"
	"github.com/MKhiriev/go-param-auth/models"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services

	// validate checks decoded request bodies against their `validate` tags.
	validate *validator.Validate

	// limiter throttles credential-checking routes. Nil disables throttling.
	limiter *rate.Limiter

	metrics *metrics.Metrics

	// credentials are the demo values listed by the index endpoint.
	credentials models.Credentials

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	var limiter *rate.Limiter
	if cfg.Server.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst)
	}

	return &Handler{
		services:    services,
		validate:    newValidator(),
		limiter:     limiter,
		metrics:     m,
		credentials: demoCredentials(cfg.Auth),
		logger:      logger,
	}
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// demoCredentials picks the values shown by the index. The password is left
// out when only its hash is known.
func demoCredentials(auth config.Auth) models.Credentials {
	creds := models.Credentials{
		BearerToken: auth.BearerToken,
		Username:    auth.BasicUsername,
	}
	if len(auth.APIKeys) > 0 {
		creds.APIKey = auth.APIKeys[0]
	}
	if auth.BasicPasswordHash == "" {
		creds.Password = auth.BasicPassword
	}
	return creds
}
