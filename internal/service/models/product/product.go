package product

import "github.com/shopspring/decimal"

// Product is a catalog snapshot attached to order items for display and
// logging. The discount math uses the item's unit price, not this price.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}
