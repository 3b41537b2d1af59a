package service

import (
	"context"
	"testing"

	"leo-furniture-api/internal/model"
	"leo-furniture-api/internal/repository"
)

func newTestServices(t *testing.T) (*repository.SQLStore, *ItemService, *ExpenseService, *AnalyticsService) {
	t.Helper()
	store := repository.NewTestStore(t)
	return store,
		NewItemService(store),
		NewExpenseService(store, store),
		NewAnalyticsService(store)
}

func testUser(t *testing.T, store *repository.SQLStore, email string) *model.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), "Leo", email, "hash", model.RoleUser)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }
