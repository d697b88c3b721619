package discountsvc

import (
	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
)

var (
	amountTierHigh = decimal.NewFromInt(10_000)
	amountTierMid  = decimal.NewFromInt(5_000)
	amountTierLow  = decimal.NewFromInt(1_000)
)

// OrderAmountRule grants 15/10/5% for order totals strictly above
// 10000/5000/1000. Boundary values fall to the lower tier.
type OrderAmountRule struct{}

func NewOrderAmountRule() OrderAmountRule {
	return OrderAmountRule{}
}

func (OrderAmountRule) Calculate(_ *customer.Customer, o *order.Order) decimal.Decimal {
	amount := o.ItemsTotal()

	switch {
	case amount.GreaterThan(amountTierHigh):
		return decimal.NewFromInt(15)
	case amount.GreaterThan(amountTierMid):
		return decimal.NewFromInt(10)
	case amount.GreaterThan(amountTierLow):
		return decimal.NewFromInt(5)
	default:
		return decimal.Zero
	}
}
