package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"leo-furniture-api/internal/model"
)

const itemColumns = `id, user_id, item_number, title, category, purchase_price,
	sold_price, in_store, delivery_price, status, created_at`

// CreateItem inserts a new item and returns the stored record.
func (s *SQLStore) CreateItem(ctx context.Context, item model.Item) (*model.Item, error) {
	id, err := s.insertID(ctx,
		`INSERT INTO items (user_id, item_number, title, category, purchase_price,
			sold_price, in_store, delivery_price, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.UserID, item.ItemNumber, item.Title, item.Category, item.PurchasePrice,
		item.SoldPrice, item.InStore, item.DeliveryPrice, item.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return s.GetItem(ctx, item.UserID, id)
}

// ListItems returns all items owned by userID, newest first. The secondary
// sort on id keeps the order stable when timestamps collide.
func (s *SQLStore) ListItems(ctx context.Context, userID int64) ([]model.Item, error) {
	var items []model.Item
	err := s.db.SelectContext(ctx, &items, s.db.Rebind(
		`SELECT `+itemColumns+` FROM items WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`), userID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// GetItem returns an owned item, or nil if it does not exist for userID.
func (s *SQLStore) GetItem(ctx context.Context, userID, itemID int64) (*model.Item, error) {
	var item model.Item
	err := s.db.GetContext(ctx, &item, s.db.Rebind(
		`SELECT `+itemColumns+` FROM items WHERE id = ? AND user_id = ?`), itemID, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies the supplied fields only. Returns nil when the item does
// not exist for userID. Concurrent updates are last-write-wins at the field
// level; atomicity is the backing store's.
func (s *SQLStore) UpdateItem(ctx context.Context, userID, itemID int64, patch model.ItemPatch) (*model.Item, error) {
	existing, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	var sets []string
	var args []interface{}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.SoldPrice != nil {
		sets = append(sets, "sold_price = ?")
		args = append(args, *patch.SoldPrice)
	}
	if len(sets) == 0 {
		return existing, nil
	}

	args = append(args, itemID, userID)
	_, err = s.db.ExecContext(ctx, s.db.Rebind(
		`UPDATE items SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`), args...)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	return s.GetItem(ctx, userID, itemID)
}

// MarkItemSold transitions an item out of the store. Returns nil when the
// item does not exist for userID.
func (s *SQLStore) MarkItemSold(ctx context.Context, userID, itemID int64, soldPrice, deliveryPrice float64) (*model.Item, error) {
	existing, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	_, err = s.db.ExecContext(ctx, s.db.Rebind(
		`UPDATE items SET in_store = ?, sold_price = ?, delivery_price = ?, status = ?
		 WHERE id = ? AND user_id = ?`),
		false, soldPrice, deliveryPrice, model.StatusSold, itemID, userID)
	if err != nil {
		return nil, fmt.Errorf("marking item sold: %w", err)
	}

	return s.GetItem(ctx, userID, itemID)
}

// DeleteItem removes an owned item; associated expenses cascade.
func (s *SQLStore) DeleteItem(ctx context.Context, userID, itemID int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(
		`DELETE FROM items WHERE id = ? AND user_id = ?`), itemID, userID)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}
	return affected > 0, nil
}

// ProfitTotals computes the three ledger sums in a single scan. Sales and
// delivery only count sold items; cost counts every item regardless of state.
func (s *SQLStore) ProfitTotals(ctx context.Context, userID int64) (ProfitTotals, error) {
	var totals ProfitTotals
	err := s.db.GetContext(ctx, &totals, s.db.Rebind(
		`SELECT
			COALESCE(SUM(CASE WHEN NOT in_store THEN sold_price END), 0) AS gross_sales,
			COALESCE(SUM(purchase_price), 0) AS total_cost,
			COALESCE(SUM(CASE WHEN NOT in_store THEN delivery_price END), 0) AS total_delivery
		 FROM items WHERE user_id = ?`), userID)
	if err != nil {
		return ProfitTotals{}, fmt.Errorf("computing profit totals: %w", err)
	}
	return totals, nil
}

// Ensure SQLStore implements ItemRepository
var _ ItemRepository = (*SQLStore)(nil)
