package http

import (
	"net/http"

	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
)

var indexEndpoints = models.IndexEndpoints{
	ParameterPassing: []string{
		"GET /sum/query - Pass numbers in query parameters",
		"POST /sum/body - Pass numbers in request body",
		"GET /sum/header - Pass numbers in headers",
	},
	Authentication: []string{
		"GET /auth/api-key-header - API key in header (X-API-Key)",
		"GET /auth/api-key-query - API key in query parameter",
		"POST /auth/bearer - Bearer token authentication",
		"POST /auth/basic - Basic authentication (username:password)",
		"POST /token - Exchange basic credentials for a bearer token",
	},
	Combined: []string{
		"POST /combined/all-methods - Body, query, header and API key together",
	},
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.IndexResponse{
		Message:     "Parameter & Auth Examples",
		Endpoints:   indexEndpoints,
		Credentials: h.credentials,
	}, http.StatusOK)
}
