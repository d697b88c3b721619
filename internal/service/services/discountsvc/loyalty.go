package discountsvc

import (
	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/pkg/clock"
)

// LoyaltyRule grants 5% after five loyalty years and 2% after two. Loyalty
// years are a calendar-year subtraction, not elapsed full years: a customer
// registered in December counts a full year the following January.
type LoyaltyRule struct {
	clk clock.Clock
}

func NewLoyaltyRule(clk clock.Clock) LoyaltyRule {
	return LoyaltyRule{clk: clk}
}

func (r LoyaltyRule) Calculate(c *customer.Customer, _ *order.Order) decimal.Decimal {
	years := r.clk.Now().Year() - c.RegistrationDate.Year()

	switch {
	case years >= 5:
		return decimal.NewFromInt(5)
	case years >= 2:
		return decimal.NewFromInt(2)
	default:
		return decimal.Zero
	}
}
