package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/service/models/orderitem"
	"github.com/avetra-labs/oms/internal/service/models/orderstatus"
)

// ErrItemsNotLoaded is returned when order processing is attempted on an
// order whose line items were never loaded. A loaded but empty item list is
// valid; a nil one is a programming error.
var ErrItemsNotLoaded = errors.New("order items must be loaded")

// Order represents an order placed by a customer. TotalAmount,
// DiscountPercent, and DiscountAmount are recomputed on every processing
// pass; Items is nil until loaded from storage.
type Order struct {
	ID              int64                 `json:"id"`
	CustomerID      int64                 `json:"customerId"`
	OrderDate       time.Time             `json:"orderDate"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	DiscountPercent decimal.Decimal       `json:"discountPercent"`
	DiscountAmount  decimal.Decimal       `json:"discountAmount"`
	Status          orderstatus.Status    `json:"status"`
	Items           []orderitem.OrderItem `json:"items"`
}

// ItemsTotal sums quantity times unit price over the loaded line items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}

	return total
}
