package service

import (
	"context"

	"leo-furniture-api/internal/model"
	"leo-furniture-api/internal/repository"
	"leo-furniture-api/pkg/apierror"
)

// ItemService validates and applies item lifecycle operations: creation,
// generic patching, the sell transition, and deletion.
type ItemService struct {
	items repository.ItemRepository
}

// NewItemService creates a new item service.
func NewItemService(items repository.ItemRepository) *ItemService {
	return &ItemService{items: items}
}

// CreateItemInput is the typed input for item creation.
type CreateItemInput struct {
	ItemNumber    string   `json:"item_number"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	PurchasePrice float64  `json:"purchase_price"`
	InStore       bool     `json:"in_store"`
	SoldPrice     *float64 `json:"sold_price"`
	DeliveryPrice *float64 `json:"delivery_price"`
}

// Validate checks the cross-field creation rules.
func (in CreateItemInput) Validate() error {
	var details []apierror.FieldError

	if in.ItemNumber == "" {
		details = append(details, apierror.FieldError{Field: "item_number", Message: "must not be empty"})
	}
	if in.Title == "" {
		details = append(details, apierror.FieldError{Field: "title", Message: "must not be empty"})
	}
	if !model.ValidCategory(in.Category) {
		details = append(details, apierror.FieldError{Field: "category", Message: "unknown category"})
	}
	if in.PurchasePrice < 0 {
		details = append(details, apierror.FieldError{Field: "purchase_price", Message: "must be non-negative"})
	}
	if in.SoldPrice != nil && *in.SoldPrice < 0 {
		details = append(details, apierror.FieldError{Field: "sold_price", Message: "must be non-negative"})
	}
	if in.DeliveryPrice != nil && *in.DeliveryPrice < 0 {
		details = append(details, apierror.FieldError{Field: "delivery_price", Message: "must be non-negative"})
	}
	if len(details) > 0 {
		return apierror.Validation("invalid item", details...)
	}

	if !in.InStore && in.SoldPrice == nil {
		return apierror.Validation("sold_price is required when item is sold")
	}

	return nil
}

// Create validates the input, derives the stored financial state and inserts
// the item. An in-store item is persisted with a NULL sold_price and zero
// delivery_price regardless of any transient values supplied.
func (s *ItemService) Create(ctx context.Context, userID int64, in CreateItemInput) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item := model.Item{
		UserID:        userID,
		ItemNumber:    in.ItemNumber,
		Title:         in.Title,
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		InStore:       in.InStore,
	}

	if in.InStore {
		item.SoldPrice = nil
		item.DeliveryPrice = 0
		item.Status = model.StatusInStore
	} else {
		item.SoldPrice = in.SoldPrice
		if in.DeliveryPrice != nil {
			item.DeliveryPrice = *in.DeliveryPrice
		}
		item.Status = model.StatusSold
	}

	created, err := s.items.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List returns all of the user's items, newest first.
func (s *ItemService) List(ctx context.Context, userID int64) ([]model.Item, error) {
	items, err := s.items.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// UpdateItemInput is the typed input for a generic partial update. Only
// status and sold_price are patchable; the sell transition is a separate
// operation.
type UpdateItemInput struct {
	Status    *string  `json:"status"`
	SoldPrice *float64 `json:"sold_price"`
}

// Validate checks the patch fields.
func (in UpdateItemInput) Validate() error {
	if in.Status == nil && in.SoldPrice == nil {
		return apierror.Validation("no fields to update")
	}

	var details []apierror.FieldError
	if in.Status != nil && !model.ValidUpdateStatus(*in.Status) {
		details = append(details, apierror.FieldError{Field: "status", Message: "unknown status"})
	}
	if in.SoldPrice != nil && *in.SoldPrice < 0 {
		details = append(details, apierror.FieldError{Field: "sold_price", Message: "must be non-negative"})
	}
	if len(details) > 0 {
		return apierror.Validation("invalid patch", details...)
	}
	return nil
}

// Update applies only the supplied fields to an owned item.
func (s *ItemService) Update(ctx context.Context, userID, itemID int64, in UpdateItemInput) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.UpdateItem(ctx, userID, itemID, model.ItemPatch{
		Status:    in.Status,
		SoldPrice: in.SoldPrice,
	})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apierror.NotFound("Item not found")
	}
	return item, nil
}

// SellItemInput is the typed input for the sell transition.
type SellItemInput struct {
	SoldPrice     *float64 `json:"sold_price"`
	DeliveryPrice *float64 `json:"delivery_price"`
}

// Validate checks the sale amounts.
func (in SellItemInput) Validate() error {
	if in.SoldPrice == nil {
		return apierror.Validation("sold_price is required when item is sold")
	}

	var details []apierror.FieldError
	if *in.SoldPrice < 0 {
		details = append(details, apierror.FieldError{Field: "sold_price", Message: "must be non-negative"})
	}
	if in.DeliveryPrice != nil && *in.DeliveryPrice < 0 {
		details = append(details, apierror.FieldError{Field: "delivery_price", Message: "must be non-negative"})
	}
	if len(details) > 0 {
		return apierror.Validation("invalid sale", details...)
	}
	return nil
}

// Sell transitions an owned in-store item to sold, recording the sale price
// and delivery cost together with the status change. There is no transition
// back from sold to in-store.
func (s *ItemService) Sell(ctx context.Context, userID, itemID int64, in SellItemInput) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apierror.NotFound("Item not found")
	}
	if !item.InStore {
		return nil, apierror.BadRequest("item is already sold")
	}

	deliveryPrice := 0.0
	if in.DeliveryPrice != nil {
		deliveryPrice = *in.DeliveryPrice
	}

	sold, err := s.items.MarkItemSold(ctx, userID, itemID, *in.SoldPrice, deliveryPrice)
	if err != nil {
		return nil, err
	}
	if sold == nil {
		return nil, apierror.NotFound("Item not found")
	}
	return sold, nil
}

// Delete removes an owned item unconditionally; its expenses cascade.
func (s *ItemService) Delete(ctx context.Context, userID, itemID int64) error {
	deleted, err := s.items.DeleteItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return apierror.NotFound("Item not found")
	}
	return nil
}
