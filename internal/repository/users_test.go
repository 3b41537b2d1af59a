package repository

import (
	"context"
	"testing"

	"leo-furniture-api/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "Leo", "leo@example.com", "hash", model.RoleUser)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected generated id")
	}
	if user.Role != model.RoleUser {
		t.Errorf("expected role 'user', got %q", user.Role)
	}

	got, err := store.GetUserByEmail(ctx, "leo@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Error("expected to find user by email")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, "Leo", "leo@example.com", "hash", model.RoleUser); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := store.CreateUser(ctx, "Leo Again", "leo@example.com", "hash2", model.RoleUser)
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetUserByEmailMissing(t *testing.T) {
	store := NewTestStore(t)

	got, err := store.GetUserByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown email")
	}
}
