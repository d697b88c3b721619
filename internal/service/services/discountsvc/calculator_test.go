package discountsvc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/internal/service/models/orderitem"
	"github.com/avetra-labs/oms/internal/service/models/orderstatus"
	"github.com/avetra-labs/oms/pkg/clock"
)

var calcNow = time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

func newCalculator() *Calculator {
	return NewCalculator(clock.NewFixed(calcNow))
}

func TestApplyDiscount_ItemsNotLoaded(t *testing.T) {
	calc := newCalculator()
	ord := &order.Order{ID: 1, Status: orderstatus.StatusPending}

	err := calc.ApplyDiscount(&customer.Customer{}, ord)

	require.ErrorIs(t, err, order.ErrItemsNotLoaded)
	assert.Equal(t, orderstatus.StatusPending, ord.Status)
}

func TestApplyDiscount_EmptyItems(t *testing.T) {
	calc := newCalculator()
	ord := &order.Order{ID: 1, Items: []orderitem.OrderItem{}}

	err := calc.ApplyDiscount(&customer.Customer{RegistrationDate: calcNow}, ord)

	require.NoError(t, err)
	assert.True(t, ord.DiscountPercent.IsZero())
	assert.True(t, ord.DiscountAmount.IsZero())
	assert.True(t, ord.TotalAmount.IsZero())
	assert.Equal(t, orderstatus.StatusProcessed, ord.Status)
}

// VIP registered ten years back with a 12000 order: 10+5+15 sums to 30 and
// is capped at 25.
func TestApplyDiscount_CapsAtTwentyFive(t *testing.T) {
	calc := newCalculator()
	cust := &customer.Customer{
		IsVip:            true,
		RegistrationDate: time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	ord := &order.Order{
		Items: []orderitem.OrderItem{
			{Quantity: 2, UnitPrice: decimal.NewFromInt(6000)},
		},
	}

	err := calc.ApplyDiscount(cust, ord)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(25).Equal(ord.DiscountPercent))
	assert.True(t, decimal.NewFromInt(3000).Equal(ord.DiscountAmount))
	assert.True(t, decimal.NewFromInt(9000).Equal(ord.TotalAmount))
	assert.Equal(t, orderstatus.StatusProcessed, ord.Status)
}

func TestApplyDiscount_NoDiscount(t *testing.T) {
	calc := newCalculator()
	cust := &customer.Customer{RegistrationDate: calcNow}
	ord := &order.Order{
		Items: []orderitem.OrderItem{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
		},
	}

	err := calc.ApplyDiscount(cust, ord)

	require.NoError(t, err)
	assert.True(t, ord.DiscountPercent.IsZero())
	assert.True(t, ord.DiscountAmount.IsZero())
	assert.True(t, decimal.NewFromInt(500).Equal(ord.TotalAmount))
}

// Registration a year in the future counts as under two loyalty years; only
// the amount tier applies.
func TestApplyDiscount_FutureRegistration(t *testing.T) {
	calc := newCalculator()
	cust := &customer.Customer{
		RegistrationDate: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
	}
	ord := &order.Order{
		Items: []orderitem.OrderItem{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(6000)},
		},
	}

	err := calc.ApplyDiscount(cust, ord)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(ord.DiscountPercent))
	assert.True(t, decimal.NewFromInt(600).Equal(ord.DiscountAmount))
	assert.True(t, decimal.NewFromInt(5400).Equal(ord.TotalAmount))
}

// DiscountAmount must equal the pre-discount amount times the percent, and
// TotalAmount the remainder.
func TestApplyDiscount_AmountIdentity(t *testing.T) {
	calc := newCalculator()
	cust := &customer.Customer{
		RegistrationDate: time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	ord := &order.Order{
		Items: []orderitem.OrderItem{
			{Quantity: 3, UnitPrice: decimal.RequireFromString("699.99")},
		},
	}

	err := calc.ApplyDiscount(cust, ord)
	require.NoError(t, err)

	before := decimal.RequireFromString("2099.97")
	wantDiscount := before.Mul(ord.DiscountPercent).Div(decimal.NewFromInt(100))

	assert.True(t, wantDiscount.Equal(ord.DiscountAmount))
	assert.True(t, before.Sub(wantDiscount).Equal(ord.TotalAmount))
}

func TestCalculatorWithRules_SumsContributions(t *testing.T) {
	calc := NewCalculatorWithRules(NewVipRule(), NewOrderAmountRule())
	cust := &customer.Customer{IsVip: true}
	ord := &order.Order{
		Items: []orderitem.OrderItem{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(2000)},
		},
	}

	err := calc.ApplyDiscount(cust, ord)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15).Equal(ord.DiscountPercent))
}
