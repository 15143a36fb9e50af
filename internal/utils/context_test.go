// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adrián Velasco

package utils

import (
	"context"
	"testing"

	"github.com/avelasco/noteboard/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{Sub: 42, Username: "alice", Email: "alice@example.com"}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, want)

	identity, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if identity != want {
		t.Errorf("expected identity=%v, got %v", want, identity)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	identity, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if identity != (models.Identity{}) {
		t.Errorf("expected zero identity, got %v", identity)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-an-identity")

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
