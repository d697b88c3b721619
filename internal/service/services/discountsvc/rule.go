package discountsvc

import (
	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
)

// Rule computes a discount percentage contribution from customer and order
// attributes. Rules are pure; their contributions are summed and capped by
// the Calculator.
type Rule interface {
	Calculate(c *customer.Customer, o *order.Order) decimal.Decimal
}
