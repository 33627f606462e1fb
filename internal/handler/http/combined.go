package http

import (
	"net/http"

	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
)

// combinedAllMethods reads the operands from the JSON body, the multiplier
// from the query (default 1.0) and the operation label from the X-Operation
// header (default "sum"). The label is echoed back; the computation is
// always (num1 + num2) * multiplier.
func (h *Handler) combinedAllMethods(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeSumRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	multiplier, err := optionalQueryFloat(r, paramMultiplier, defaultMultiplier)
	if err != nil {
		writeError(w, r, err)
		return
	}

	operation := r.Header.Get(headerOperation)
	if operation == "" {
		operation = defaultOperation
	}

	num1, num2 := req.Operands()
	result := h.services.SumService.Combine(r.Context(), num1, num2, multiplier)
	if err = finite(result); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CombinedResponse{
		Result:        result,
		Operation:     operation,
		Multiplier:    multiplier,
		Authenticated: true,
	}, http.StatusOK)
}
