package model

// ProfitSummary holds the derived financial metrics for one user's ledger.
//
// Delivery is treated as a cost, not netted out of sold_price at write time,
// so the raw sale amount stays visible and the formula remains three
// independent sums. total_cost covers ALL items, sold or not: net profit is
// penalized by unsold inventory investment, answering "what is my profit
// position right now".
type ProfitSummary struct {
	GrossSales    float64 `json:"gross_sales"`
	TotalCost     float64 `json:"total_cost"`
	TotalDelivery float64 `json:"total_delivery"`
	NetProfit     float64 `json:"net_profit"`
}
