package discountsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/pkg/clock"
)

var loyaltyNow = time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

func registeredAt(t time.Time) *customer.Customer {
	return &customer.Customer{RegistrationDate: t}
}

func TestLoyaltyRule_Tiers(t *testing.T) {
	rule := NewLoyaltyRule(clock.NewFixed(loyaltyNow))

	tests := []struct {
		name       string
		registered time.Time
		want       int64
	}{
		{"ten years", time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC), 5},
		{"exactly five years", time.Date(2020, 7, 2, 0, 0, 0, 0, time.UTC), 5},
		{"three years", time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC), 2},
		{"exactly two years", time.Date(2023, 7, 2, 0, 0, 0, 0, time.UTC), 2},
		{"one year", time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), 0},
		{"same day", loyaltyNow, 0},
		{"registered in the future", time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Calculate(registeredAt(tt.registered), &order.Order{})

			assert.Equalf(t, tt.want, got.IntPart(), "want %d, got %s", tt.want, got)
		})
	}
}

// Loyalty years are a calendar-year subtraction: a December registration
// counts a full year the following January.
func TestLoyaltyRule_CalendarYearSubtraction(t *testing.T) {
	rule := NewLoyaltyRule(clock.NewFixed(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	got := rule.Calculate(registeredAt(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)), &order.Order{})

	assert.Equal(t, int64(2), got.IntPart())
}
