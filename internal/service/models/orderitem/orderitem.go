package orderitem

import (
	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/service/models/product"
)

// OrderItem represents a line item within an order.
type OrderItem struct {
	ID        int64            `json:"id"`
	OrderID   int64            `json:"orderId"`
	ProductID int64            `json:"productId"`
	Quantity  int              `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unitPrice"`
	Product   *product.Product `json:"product,omitempty"`
}

// Subtotal returns quantity times unit price for the item.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
