package http

import (
	"net/http"

	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
)

// Handlers below run behind one of the auth middlewares, which store the
// accepted scheme (and username, if any) in the request context.

func (h *Handler) authAPIKeyHeader(w http.ResponseWriter, r *http.Request) {
	num1, num2, err := queryOperands(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeAuthenticatedSum(w, r, num1, num2)
}

func (h *Handler) authAPIKeyQuery(w http.ResponseWriter, r *http.Request) {
	num1, num2, err := queryOperands(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeAuthenticatedSum(w, r, num1, num2)
}

func (h *Handler) authBearer(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeSumRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	num1, num2 := req.Operands()
	h.writeAuthenticatedSum(w, r, num1, num2)
}

func (h *Handler) authBasic(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeSumRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	num1, num2 := req.Operands()
	h.writeAuthenticatedSum(w, r, num1, num2)
}

func (h *Handler) writeAuthenticatedSum(w http.ResponseWriter, r *http.Request, num1, num2 float64) {
	ctx := r.Context()

	result := h.services.SumService.Sum(ctx, num1, num2)
	if err := finite(result); err != nil {
		writeError(w, r, err)
		return
	}

	method, _ := utils.GetAuthMethodFromContext(ctx)
	username, _ := utils.GetUsernameFromContext(ctx)

	utils.WriteJSON(w, models.AuthResponse{
		Result:        result,
		AuthMethod:    method,
		Username:      username,
		Authenticated: true,
	}, http.StatusOK)
}
