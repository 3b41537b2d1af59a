package model

import "time"

// Item is one physical unit of inventory. sold_price is NULL while the item
// is in store and delivery_price is 0; both are set when the item is sold.
type Item struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	ItemNumber    string    `db:"item_number" json:"item_number"`
	Title         string    `db:"title" json:"title"`
	Category      string    `db:"category" json:"category"`
	PurchasePrice float64   `db:"purchase_price" json:"purchase_price"`
	SoldPrice     *float64  `db:"sold_price" json:"sold_price"`
	InStore       bool      `db:"in_store" json:"in_store"`
	DeliveryPrice float64   `db:"delivery_price" json:"delivery_price"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Item categories.
const (
	CategoryLivingRoom = "Living Room"
	CategoryDiningRoom = "Dining Room"
	CategoryBedrooms   = "Bedrooms"
	CategoryMattresses = "Mattresses"
	CategoryRugs       = "Rugs"
)

// Categories lists every valid item category.
var Categories = []string{
	CategoryLivingRoom,
	CategoryDiningRoom,
	CategoryBedrooms,
	CategoryMattresses,
	CategoryRugs,
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Item statuses. The status label tracks a finer-grained lifecycle than the
// in_store flag; the profit formula only reads the flag.
const (
	StatusInStore  = "in_store"
	StatusListed   = "listed"
	StatusSold     = "sold"
	StatusShipped  = "shipped"
	StatusReturned = "returned"
)

// updatableStatuses are the statuses accepted through the generic patch.
// in_store is only set at creation; there is no transition back from sold.
var updatableStatuses = []string{
	StatusListed,
	StatusSold,
	StatusShipped,
	StatusReturned,
}

// ValidUpdateStatus reports whether s may be set via a patch.
func ValidUpdateStatus(s string) bool {
	for _, v := range updatableStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ItemPatch is a partial update; nil fields are left unchanged.
type ItemPatch struct {
	Status    *string
	SoldPrice *float64
}

// Empty reports whether the patch would change nothing.
func (p ItemPatch) Empty() bool {
	return p.Status == nil && p.SoldPrice == nil
}
