package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/avetra-labs/oms/internal/dal/postgres"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/internal/service/models/orderitem"
	"github.com/avetra-labs/oms/internal/service/models/orderstatus"
	"github.com/avetra-labs/oms/internal/service/models/product"
	"github.com/avetra-labs/oms/pkg/clock"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	Id              int64           `db:"id"`
	CustomerId      int64           `db:"customer_id"`
	OrderDate       time.Time       `db:"order_date"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	DiscountAmount  decimal.Decimal `db:"discount_amount"`
	Status          string          `db:"status"`
}

// ToModel converts OrderDal to service layer Order model. Items must be
// populated separately.
func (o *OrderDal) ToModel() (*order.Order, error) {
	status, err := orderstatus.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}

	return &order.Order{
		ID:              o.Id,
		CustomerID:      o.CustomerId,
		OrderDate:       o.OrderDate,
		TotalAmount:     o.TotalAmount,
		DiscountPercent: o.DiscountPercent,
		DiscountAmount:  o.DiscountAmount,
		Status:          status,
	}, nil
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn postgres.GenericConn
	clk  clock.Clock
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository. The
// clock supplies audit log timestamps.
func NewPostgresOrderRepository(conn postgres.GenericConn, clk clock.Clock) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		clk:  clk,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetPendingOrders retrieves all Pending orders for a customer with line
// items and product snapshots loaded, in order id order.
func (r *PostgresOrderRepository) GetPendingOrders(
	ctx context.Context,
	customerID int64,
) ([]order.Order, error) {
	sql := `
		SELECT
			o.id, o.customer_id, o.order_date, o.total_amount, o.discount_percent, o.discount_amount, o.status,
			oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
			p.id, p.name, p.category, p.price
		FROM orders o
		INNER JOIN order_items oi ON o.id = oi.order_id
		INNER JOIN products p ON oi.product_id = p.id
		WHERE o.customer_id = $1 AND o.status = $2
		ORDER BY o.id, oi.id
	`

	rows, err := r.conn.Query(ctx, sql, customerID, orderstatus.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	index := make(map[int64]int)

	for rows.Next() {
		var dal OrderDal
		var item orderitem.OrderItem
		var prod product.Product

		err := rows.Scan(
			&dal.Id,
			&dal.CustomerId,
			&dal.OrderDate,
			&dal.TotalAmount,
			&dal.DiscountPercent,
			&dal.DiscountAmount,
			&dal.Status,
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&prod.ID,
			&prod.Name,
			&prod.Category,
			&prod.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending order: %w", err)
		}

		i, ok := index[dal.Id]
		if !ok {
			model, err := dal.ToModel()
			if err != nil {
				return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
			}
			model.Items = []orderitem.OrderItem{}

			result = append(result, *model)
			i = len(result) - 1
			index[dal.Id] = i
		}

		item.Product = &prod
		result[i].Items = append(result[i].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Query retrieves orders based on filter criteria, with line items attached.
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	query := r.sb.
		Select(
			"id",
			"customer_id",
			"order_date",
			"total_amount",
			"discount_percent",
			"discount_amount",
			"status",
		).
		From("orders").
		OrderBy("id")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.CustomerIds) > 0 {
		query = query.Where(sq.Eq{"customer_id": filter.CustomerIds})
	}

	if len(filter.Statuses) > 0 {
		query = query.Where(sq.Eq{"status": filter.Statuses})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		err := rows.Scan(
			&dal.Id,
			&dal.CustomerId,
			&dal.OrderDate,
			&dal.TotalAmount,
			&dal.DiscountPercent,
			&dal.DiscountAmount,
			&dal.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		model.Items = []orderitem.OrderItem{}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	if len(result) == 0 {
		return result, nil
	}

	return r.attachItems(ctx, result)
}

// attachItems loads line items for the queried orders.
func (r *PostgresOrderRepository) attachItems(
	ctx context.Context,
	orders []order.Order,
) ([]order.Order, error) {
	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
	}

	sql, args, err := r.sb.
		Select("id", "order_id", "product_id", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order items query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item orderitem.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orders, nil
}

// UpdateOrder persists the order's amount, discount, and status fields.
func (r *PostgresOrderRepository) UpdateOrder(ctx context.Context, o *order.Order) error {
	sql := `
		UPDATE orders
		SET total_amount = $1,
		    discount_percent = $2,
		    discount_amount = $3,
		    status = $4
		WHERE id = $5
	`

	_, err := r.conn.Exec(ctx, sql,
		o.TotalAmount,
		o.DiscountPercent,
		o.DiscountAmount,
		o.Status,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	return nil
}

// UpdateStatus persists the order's status only.
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	sql := `UPDATE orders SET status = $1 WHERE id = $2`

	_, err := r.conn.Exec(ctx, sql, o.Status, o.ID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	return nil
}

// InsertLog appends an audit log entry for the order, timestamped from the
// injected clock.
func (r *PostgresOrderRepository) InsertLog(ctx context.Context, orderID int64, message string) error {
	sql := `
		INSERT INTO order_logs (order_id, log_date, message)
		VALUES ($1, $2, $3)
	`

	_, err := r.conn.Exec(ctx, sql, orderID, r.clk.Now(), message)
	if err != nil {
		return fmt.Errorf("failed to insert order log: %w", err)
	}

	return nil
}
