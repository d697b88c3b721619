package discountsvc

import (
	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
)

var vipPercent = decimal.NewFromInt(10)

// VipRule grants 10% to VIP customers.
type VipRule struct{}

func NewVipRule() VipRule {
	return VipRule{}
}

func (VipRule) Calculate(c *customer.Customer, _ *order.Order) decimal.Decimal {
	if c.IsVip {
		return vipPercent
	}

	return decimal.Zero
}
