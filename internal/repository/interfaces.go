package repository

import (
	"context"

	"leo-furniture-api/internal/model"
)

// ItemRepository defines item ledger data access methods. Every method is
// scoped by the owning user's ID; items of other users are invisible.
type ItemRepository interface {
	// CreateItem inserts a new item and returns the stored record.
	CreateItem(ctx context.Context, item model.Item) (*model.Item, error)

	// ListItems returns all items owned by userID, newest first.
	ListItems(ctx context.Context, userID int64) ([]model.Item, error)

	// GetItem returns an owned item, or nil if it does not exist for userID.
	GetItem(ctx context.Context, userID, itemID int64) (*model.Item, error)

	// UpdateItem applies a partial update and returns the updated record,
	// or nil if the item does not exist for userID.
	UpdateItem(ctx context.Context, userID, itemID int64, patch model.ItemPatch) (*model.Item, error)

	// MarkItemSold transitions an item out of the store, recording the sale
	// and delivery amounts. Returns nil if the item does not exist for userID.
	MarkItemSold(ctx context.Context, userID, itemID int64, soldPrice, deliveryPrice float64) (*model.Item, error)

	// DeleteItem removes an owned item and its expenses. Reports whether a
	// row was deleted.
	DeleteItem(ctx context.Context, userID, itemID int64) (bool, error)

	// ProfitTotals computes the ledger sums for one user.
	ProfitTotals(ctx context.Context, userID int64) (ProfitTotals, error)
}

// ProfitTotals holds the three independent sums behind the profit summary.
type ProfitTotals struct {
	GrossSales    float64 `db:"gross_sales"`
	TotalCost     float64 `db:"total_cost"`
	TotalDelivery float64 `db:"total_delivery"`
}

// ExpenseRepository defines expense ledger data access methods. Ownership of
// the referenced item is checked by the service layer.
type ExpenseRepository interface {
	// CreateExpense appends an expense record for an item.
	CreateExpense(ctx context.Context, itemID int64, expenseType string, amount float64) (*model.Expense, error)

	// ListExpenses returns all expenses for an item, newest first.
	ListExpenses(ctx context.Context, itemID int64) ([]model.Expense, error)
}

// UserRepository defines account data access methods.
type UserRepository interface {
	// CreateUser inserts a new account. Returns ErrDuplicate if the email is
	// already registered.
	CreateUser(ctx context.Context, name, email, passwordHash, role string) (*model.User, error)

	// GetUserByEmail returns the account for an email, or nil if none exists.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUser returns the account for an ID, or nil if none exists.
	GetUser(ctx context.Context, id int64) (*model.User, error)
}
