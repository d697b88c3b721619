package iorderrepo

import (
	"context"

	"github.com/avetra-labs/oms/internal/service/models/order"
)

// IOrderRepository is an interface for order postgres repository.
type IOrderRepository interface {
	// GetPendingOrders fetches all Pending orders for a customer with their
	// line items and product snapshots loaded.
	GetPendingOrders(ctx context.Context, customerID int64) ([]order.Order, error)

	// Query retrieves orders with their items based on filter criteria.
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)

	// UpdateOrder persists the order's amount, discount, and status fields.
	UpdateOrder(ctx context.Context, o *order.Order) error

	// UpdateStatus persists the order's status only.
	UpdateStatus(ctx context.Context, o *order.Order) error

	// InsertLog appends an audit log entry for the order.
	InsertLog(ctx context.Context, orderID int64, message string) error
}
