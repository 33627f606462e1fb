package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "admin", time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Issuer)
	}
	if token.Subject != "admin" || token.Username != "admin" {
		t.Errorf("expected subject 'admin', got %s", token.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "admin", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "admin", 0, "key"},
		{"negative duration", "iss", "admin", -time.Minute, "key"},
		{"empty key", "iss", "admin", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issued, err := GenerateJWTToken("iss", "admin", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Username != "admin" {
		t.Errorf("expected username 'admin', got '%s'", parsed.Username)
	}
	if parsed.String() != issued.SignedString {
		t.Error("expected parsed token to keep the signed string")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issued, _ := GenerateJWTToken("iss", "admin", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(issued.SignedString, "other-key", "iss")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "iss")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expired error, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", Subject: "admin"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Fatal("expected error for token without exp claim")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, _ := GenerateJWTToken("iss", "admin", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(issued.SignedString, "key", "other-iss")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Fatalf("expected issuer error, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("valid-bearer-token-xyz", "key", "iss"); err == nil {
		t.Fatal("expected error for a non-JWT string")
	}
}

func TestValidateAndParseJWTToken_NoSignKey(t *testing.T) {
	issued, _ := GenerateJWTToken("iss", "admin", time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "", "iss"); err == nil {
		t.Fatal("expected error when sign key is empty")
	}
}
