package model

import "time"

// Expense is a supplementary cost record attached to an item. Expenses are
// append-only and independent of the item's own delivery_price; they are not
// folded into the profit summary.
type Expense struct {
	ID        int64     `db:"id" json:"id"`
	ItemID    int64     `db:"item_id" json:"item_id"`
	Type      string    `db:"type" json:"type"`
	Amount    float64   `db:"amount" json:"amount"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expense types.
const (
	ExpenseShipping    = "shipping"
	ExpensePlatformFee = "platform_fee"
	ExpenseSupplies    = "supplies"
	ExpenseTax         = "tax"
	ExpenseOther       = "other"
)

// ExpenseTypes lists every valid expense type.
var ExpenseTypes = []string{
	ExpenseShipping,
	ExpensePlatformFee,
	ExpenseSupplies,
	ExpenseTax,
	ExpenseOther,
}

// ValidExpenseType reports whether t is a known expense type.
func ValidExpenseType(t string) bool {
	for _, v := range ExpenseTypes {
		if t == v {
			return true
		}
	}
	return false
}
