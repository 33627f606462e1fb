package http

import (
	"net/http"

	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
)

// sumQuery handles GET /sum/query?num1=&num2=
func (h *Handler) sumQuery(w http.ResponseWriter, r *http.Request) {
	num1, num2, err := queryOperands(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeSum(w, r, num1, num2, models.MethodQueryParameters)
}

// sumBody handles POST /sum/body with a JSON {num1, num2} body.
func (h *Handler) sumBody(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeSumRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	num1, num2 := req.Operands()
	h.writeSum(w, r, num1, num2, models.MethodRequestBody)
}

// sumHeader handles GET /sum/header with X-Num1 and X-Num2 headers.
func (h *Handler) sumHeader(w http.ResponseWriter, r *http.Request) {
	num1, err := headerFloat(r, headerNum1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	num2, err := headerFloat(r, headerNum2)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.writeSum(w, r, num1, num2, models.MethodHeaderParameters)
}

func (h *Handler) writeSum(w http.ResponseWriter, r *http.Request, num1, num2 float64, method string) {
	result := h.services.SumService.Sum(r.Context(), num1, num2)
	if err := finite(result); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SumResponse{Result: result, Method: method}, http.StatusOK)
}
