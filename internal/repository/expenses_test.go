package repository

import (
	"context"
	"testing"

	"leo-furniture-api/internal/model"
)

func TestCreateAndListExpenses(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store, "leo@example.com")
	item, _ := store.CreateItem(ctx, inStoreItem(user.ID))

	expense, err := store.CreateExpense(ctx, item.ID, model.ExpenseShipping, 25)
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}
	if expense.ID == 0 {
		t.Error("expected generated id")
	}
	if expense.Type != model.ExpenseShipping {
		t.Errorf("expected type 'shipping', got %q", expense.Type)
	}
	if expense.Amount != 25 {
		t.Errorf("expected amount 25, got %v", expense.Amount)
	}

	second, _ := store.CreateExpense(ctx, item.ID, model.ExpenseTax, 5)

	expenses, err := store.ListExpenses(ctx, item.ID)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	if expenses[0].ID != second.ID {
		t.Errorf("expected newest expense first, got id %d", expenses[0].ID)
	}
}

func TestCreateExpenseDoesNotMutateItem(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()
	user := seedUser(t, store, "leo@example.com")
	item, _ := store.CreateItem(ctx, inStoreItem(user.ID))

	store.CreateExpense(ctx, item.ID, model.ExpenseOther, 30)

	got, _ := store.GetItem(ctx, user.ID, item.ID)
	if got.PurchasePrice != item.PurchasePrice || got.DeliveryPrice != item.DeliveryPrice || !got.InStore {
		t.Error("expected item row to be untouched by expense creation")
	}
}
