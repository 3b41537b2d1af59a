package service

import (
	"context"

	"leo-furniture-api/internal/model"
	"leo-furniture-api/internal/repository"
	"leo-furniture-api/pkg/apierror"
)

// ExpenseService appends supplementary expense records to owned items.
// Expenses never feed into the profit summary.
type ExpenseService struct {
	items    repository.ItemRepository
	expenses repository.ExpenseRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(items repository.ItemRepository, expenses repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{items: items, expenses: expenses}
}

// CreateExpenseInput is the typed input for recording an expense.
type CreateExpenseInput struct {
	ItemID int64   `json:"item_id"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Validate checks the expense fields.
func (in CreateExpenseInput) Validate() error {
	var details []apierror.FieldError
	if !model.ValidExpenseType(in.Type) {
		details = append(details, apierror.FieldError{Field: "type", Message: "unknown expense type"})
	}
	if in.Amount <= 0 {
		details = append(details, apierror.FieldError{Field: "amount", Message: "must be positive"})
	}
	if len(details) > 0 {
		return apierror.Validation("invalid expense", details...)
	}
	return nil
}

// Create records an expense against an item owned by userID. The referenced
// item is not mutated.
func (s *ExpenseService) Create(ctx context.Context, userID int64, in CreateExpenseInput) (*model.Expense, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, userID, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apierror.NotFound("Item not found")
	}

	expense, err := s.expenses.CreateExpense(ctx, in.ItemID, in.Type, in.Amount)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListForItem returns the expenses recorded against an owned item, newest
// first.
func (s *ExpenseService) ListForItem(ctx context.Context, userID, itemID int64) ([]model.Expense, error) {
	item, err := s.items.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apierror.NotFound("Item not found")
	}

	expenses, err := s.expenses.ListExpenses(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return expenses, nil
}
