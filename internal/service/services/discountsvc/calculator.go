package discountsvc

import (
	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/internal/service/models/orderstatus"
	"github.com/avetra-labs/oms/pkg/clock"
)

var (
	maxPercent = decimal.NewFromInt(25)
	oneHundred = decimal.NewFromInt(100)
)

// Calculator composes the discount rules and applies their combined result
// to an order. Individual rules may sum past 25%; the cap is enforced here
// and nowhere else.
type Calculator struct {
	rules []Rule
}

// NewCalculator creates a Calculator with the full rule set.
func NewCalculator(clk clock.Clock) *Calculator {
	return &Calculator{
		rules: []Rule{
			NewVipRule(),
			NewLoyaltyRule(clk),
			NewOrderAmountRule(),
		},
	}
}

// NewCalculatorWithRules creates a Calculator with an explicit rule set.
func NewCalculatorWithRules(rules ...Rule) *Calculator {
	return &Calculator{rules: rules}
}

// ApplyDiscount computes the total percentage over all rules, caps it at
// 25%, and mutates the order's monetary fields and status. Returns
// order.ErrItemsNotLoaded when the items list is absent; an empty loaded
// list is valid and yields zero totals.
func (c *Calculator) ApplyDiscount(cust *customer.Customer, ord *order.Order) error {
	if ord.Items == nil {
		return order.ErrItemsNotLoaded
	}

	totalAmount := ord.ItemsTotal()

	percent := decimal.Zero
	for _, rule := range c.rules {
		percent = percent.Add(rule.Calculate(cust, ord))
	}
	if percent.GreaterThan(maxPercent) {
		percent = maxPercent
	}

	discountAmount := totalAmount.Mul(percent).Div(oneHundred)

	ord.DiscountPercent = percent
	ord.DiscountAmount = discountAmount
	ord.TotalAmount = totalAmount.Sub(discountAmount)
	ord.Status = orderstatus.StatusProcessed

	return nil
}
