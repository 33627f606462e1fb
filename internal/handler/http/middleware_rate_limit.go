package http

import (
	"net/http"

	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/utils"
)

const detailTooManyRequests = "Too many requests"

// withRateLimit rejects requests with 429 once the process-wide token bucket
// is empty. It is a no-op when no limiter is configured.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil || h.limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("rate limit exceeded")
		h.metrics.ObserveRateLimited(r.URL.Path)

		w.Header().Set("Retry-After", "1")
		utils.WriteError(w, detailTooManyRequests, http.StatusTooManyRequests)
	})
}
