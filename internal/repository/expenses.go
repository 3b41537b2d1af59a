package repository

import (
	"context"
	"database/sql"
	"fmt"

	"leo-furniture-api/internal/model"
)

// CreateExpense appends an expense record for an item. The referenced item's
// row is never mutated.
func (s *SQLStore) CreateExpense(ctx context.Context, itemID int64, expenseType string, amount float64) (*model.Expense, error) {
	id, err := s.insertID(ctx,
		`INSERT INTO expenses (item_id, type, amount) VALUES (?, ?, ?)`,
		itemID, expenseType, amount,
	)
	if err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	var expense model.Expense
	err = s.db.GetContext(ctx, &expense, s.db.Rebind(
		`SELECT id, item_id, type, amount, created_at FROM expenses WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting expense: %w", err)
	}
	return &expense, nil
}

// ListExpenses returns all expenses for an item, newest first.
func (s *SQLStore) ListExpenses(ctx context.Context, itemID int64) ([]model.Expense, error) {
	var expenses []model.Expense
	err := s.db.SelectContext(ctx, &expenses, s.db.Rebind(
		`SELECT id, item_id, type, amount, created_at FROM expenses
		 WHERE item_id = ? ORDER BY created_at DESC, id DESC`), itemID)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	return expenses, nil
}

// Ensure SQLStore implements ExpenseRepository
var _ ExpenseRepository = (*SQLStore)(nil)
