package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/service"
	"github.com/MKhiriev/go-param-auth/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrMalformedBody:    http.StatusBadRequest,
	ErrFieldRequired:    http.StatusUnprocessableEntity,
	ErrNotANumber:       http.StatusUnprocessableEntity,
	ErrNotAnObject:      http.StatusUnprocessableEntity,
	ErrResultOutOfRange: http.StatusUnprocessableEntity,

	service.ErrInvalidAPIKey:      http.StatusUnauthorized,
	service.ErrInvalidBearerToken: http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,

	service.ErrTokenIssuingOff:     http.StatusNotImplemented,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// are reported by their status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	detail := err.Error()
	if status >= http.StatusInternalServerError {
		detail = http.StatusText(status)
	}

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	utils.WriteError(w, detail, status)
}
