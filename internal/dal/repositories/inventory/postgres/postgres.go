package postgresrepo

import (
	"context"
	"fmt"

	"github.com/avetra-labs/oms/internal/dal/postgres"
)

// PostgresInventoryRepository represents a Postgres inventory repository.
type PostgresInventoryRepository struct {
	conn postgres.GenericConn
}

// NewPostgresInventoryRepository creates a new Postgres inventory repository.
func NewPostgresInventoryRepository(conn postgres.GenericConn) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{
		conn: conn,
	}
}

// AreAllItemsInStock reports whether every line item of the order has
// sufficient stock. Products without an inventory row count as insufficient.
func (r *PostgresInventoryRepository) AreAllItemsInStock(
	ctx context.Context,
	orderID int64,
) (bool, error) {
	sql := `
		SELECT COUNT(*)
		FROM order_items oi
		LEFT JOIN inventory i ON oi.product_id = i.product_id
		WHERE oi.order_id = $1
		  AND (i.stock_quantity IS NULL OR i.stock_quantity < oi.quantity)
	`

	var insufficient int64
	if err := r.conn.QueryRow(ctx, sql, orderID).Scan(&insufficient); err != nil {
		return false, fmt.Errorf("failed to check stock for order %d: %w", orderID, err)
	}

	return insufficient == 0, nil
}

// ReduceInventory decrements stock for every line item of the order by its
// quantity.
func (r *PostgresInventoryRepository) ReduceInventory(ctx context.Context, orderID int64) error {
	sql := `
		UPDATE inventory i
		SET stock_quantity = i.stock_quantity - oi.quantity
		FROM order_items oi
		WHERE oi.product_id = i.product_id AND oi.order_id = $1
	`

	if _, err := r.conn.Exec(ctx, sql, orderID); err != nil {
		return fmt.Errorf("failed to reduce inventory for order %d: %w", orderID, err)
	}

	return nil
}
