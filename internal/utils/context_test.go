// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAuthMethodCtxKey(t *testing.T) {
	if AuthMethodCtxKey.String() != "authMethod" {
		t.Errorf("expected 'authMethod', got '%s'", AuthMethodCtxKey.String())
	}
}

func TestGetAuthMethodFromContext_Success(t *testing.T) {
	ctx := WithAuthMethod(context.Background(), "api_key_header")

	method, ok := GetAuthMethodFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if method != "api_key_header" {
		t.Errorf("expected 'api_key_header', got '%s'", method)
	}
}

func TestGetAuthMethodFromContext_Missing(t *testing.T) {
	method, ok := GetAuthMethodFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if method != "" {
		t.Errorf("expected empty method, got '%s'", method)
	}
}

func TestGetAuthMethodFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthMethodCtxKey, 42)

	if _, ok := GetAuthMethodFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetAuthMethodFromContext_Empty(t *testing.T) {
	ctx := WithAuthMethod(context.Background(), "")

	if _, ok := GetAuthMethodFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty value, got true")
	}
}

func TestGetUsernameFromContext(t *testing.T) {
	ctx := WithUsername(context.Background(), "admin")

	username, ok := GetUsernameFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if username != "admin" {
		t.Errorf("expected 'admin', got '%s'", username)
	}
}

func TestGetUsernameFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "admin")

	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
