package common

import (
	"context"
	"testing"
)

func TestUserContext_RoundTrip(t *testing.T) {
	ctx := context.Background()

	// Absent by default
	if uc := UserContextFromContext(ctx); uc != nil {
		t.Error("Expected nil UserContext from empty context")
	}
	if id := ResolveUserID(ctx); id != "" {
		t.Errorf("Expected empty user ID, got %q", id)
	}

	ctx = WithUserContext(ctx, &UserContext{UserID: "user-123", Name: "QA", Email: "qa@example.com"})

	got := UserContextFromContext(ctx)
	if got == nil {
		t.Fatal("Expected non-nil UserContext")
	}
	if got.Email != "qa@example.com" {
		t.Errorf("Expected qa@example.com, got %s", got.Email)
	}
	if id := ResolveUserID(ctx); id != "user-123" {
		t.Errorf("Expected user-123, got %s", id)
	}
}
