package processingsvc

import (
	"context"
	"fmt"

	"github.com/avetra-labs/oms/internal/dal/interfaces/iinventoryrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/iorderrepo"
	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/internal/service/models/orderstatus"
)

// discountCalculator applies the discount rules to an order.
type discountCalculator interface {
	ApplyDiscount(cust *customer.Customer, ord *order.Order) error
}

// ProcessingService processes a single order: discount, persist, stock
// check, then the terminal status. Each order moves
// Pending -> Processed -> Ready or OnHold exactly once per invocation.
type ProcessingService struct {
	discounts discountCalculator
}

// NewProcessingService creates a new ProcessingService.
func NewProcessingService(discounts discountCalculator) *ProcessingService {
	return &ProcessingService{
		discounts: discounts,
	}
}

// Process applies the discount, persists the updated order, and assigns the
// stock-based terminal status with its audit log entry. The repositories
// must be bound to the caller's transaction.
func (s *ProcessingService) Process(
	ctx context.Context,
	cust *customer.Customer,
	ord *order.Order,
	orders iorderrepo.IOrderRepository,
	inventory iinventoryrepo.IInventoryRepository,
) error {
	if err := s.discounts.ApplyDiscount(cust, ord); err != nil {
		return fmt.Errorf("apply discount to order %d: %w", ord.ID, err)
	}

	if err := orders.UpdateOrder(ctx, ord); err != nil {
		return err
	}

	inStock, err := inventory.AreAllItemsInStock(ctx, ord.ID)
	if err != nil {
		return err
	}

	if inStock {
		if err := inventory.ReduceInventory(ctx, ord.ID); err != nil {
			return err
		}

		ord.Status = orderstatus.StatusReady
		if err := orders.UpdateStatus(ctx, ord); err != nil {
			return err
		}

		message := fmt.Sprintf(
			"Order completed with %s%% discount. Total price: %s",
			ord.DiscountPercent,
			ord.TotalAmount,
		)

		return orders.InsertLog(ctx, ord.ID, message)
	}

	ord.Status = orderstatus.StatusOnHold
	if err := orders.UpdateStatus(ctx, ord); err != nil {
		return err
	}

	return orders.InsertLog(ctx, ord.ID, "Order on hold. Some items are not on stock.")
}
