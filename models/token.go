package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the token endpoint.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// so that it can be passed directly to [jwt.ParseWithClaims].
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// Username is the "sub" claim, i.e. the basic-auth user the token was
	// issued to.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
