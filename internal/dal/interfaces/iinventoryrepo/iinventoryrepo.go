package iinventoryrepo

import "context"

// IInventoryRepository is an interface for inventory postgres repository.
type IInventoryRepository interface {
	// AreAllItemsInStock reports whether every line item of the order has
	// sufficient stock. A product without an inventory row counts as
	// insufficient.
	AreAllItemsInStock(ctx context.Context, orderID int64) (bool, error)

	// ReduceInventory decrements stock for every line item of the order by
	// its quantity. Callers must have verified sufficiency within the same
	// transaction.
	ReduceInventory(ctx context.Context, orderID int64) error
}
