package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-param-auth/internal/service"
	"github.com/MKhiriev/go-param-auth/internal/utils"
	"github.com/MKhiriev/go-param-auth/models"
)

const tokenTypeBearer = "bearer"

// issueToken handles POST /token. Credentials are read from the
// "username" and "password" form fields, or from basic auth when the form
// carries none.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	username, password, err := tokenCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			unauthorized(w, r, detailInvalidCredentials, challengeBasic, err)
			return
		}
		writeError(w, r, err)
		return
	}

	var expiresIn int64
	if token.ExpiresAt != nil && token.IssuedAt != nil {
		expiresIn = int64(token.ExpiresAt.Sub(token.IssuedAt.Time).Seconds())
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   tokenTypeBearer,
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}

func tokenCredentials(r *http.Request) (string, string, error) {
	if err := r.ParseForm(); err != nil {
		return "", "", &ParameterError{Location: locationForm, Err: ErrMalformedBody}
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" && password == "" {
		if u, p, ok := r.BasicAuth(); ok {
			return u, p, nil
		}
	}

	if username == "" {
		return "", "", &ParameterError{Location: locationForm, Name: "username", Err: ErrFieldRequired}
	}
	if password == "" {
		return "", "", &ParameterError{Location: locationForm, Name: "password", Err: ErrFieldRequired}
	}

	return username, password, nil
}
