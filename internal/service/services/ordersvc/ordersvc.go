package ordersvc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/avetra-labs/oms/internal/dal/interfaces/icustomerrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/iinventoryrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/iorderrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/ioutboxrepo"
	"github.com/avetra-labs/oms/internal/dal/postgres"
	"github.com/avetra-labs/oms/internal/dal/uow"
	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/internal/service/models/outbox"
	"github.com/avetra-labs/oms/internal/service/services/discountsvc"
	"github.com/avetra-labs/oms/internal/service/services/processingsvc"
	"github.com/avetra-labs/oms/pkg/clock"
)

// ErrInvalidCustomerID is returned before any resource is acquired when the
// customer identifier is not positive.
var ErrInvalidCustomerID = errors.New("customer id must be a positive number")

const (
	processedQueue    = "oms.order.processed"
	outboxMaxRetries  = 5
	outboxContentType = "application/json"
)

// unitOfWork is the transactional scope the service runs in.
type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CustomerRepository() icustomerrepo.ICustomerRepository
	OrderRepository() iorderrepo.IOrderRepository
	InventoryRepository() iinventoryrepo.IInventoryRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

// processor handles a single pending order within the transaction.
type processor interface {
	Process(
		ctx context.Context,
		cust *customer.Customer,
		ord *order.Order,
		orders iorderrepo.IOrderRepository,
		inventory iinventoryrepo.IInventoryRepository,
	) error
}

// OrderService is a service for processing and querying customer orders.
type OrderService struct {
	pgClient  *postgres.Client
	clk       clock.Clock
	processor processor
	newUOW    func() unitOfWork
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.clk == nil {
		s.clk = clock.NewSystem()
	}
	if s.processor == nil {
		s.processor = processingsvc.NewProcessingService(discountsvc.NewCalculator(s.clk))
	}
	if s.newUOW == nil {
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient, s.clk)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithClock sets the time source for discount and audit log timestamps.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(clk clock.Clock) option {
	return func(s *OrderService) {
		s.clk = clk
	}
}

// WithProcessor sets the per-order processor.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProcessor(p processor) option {
	return func(s *OrderService) {
		s.processor = p
	}
}

// WithUnitOfWorkFactory sets the unit of work factory.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.newUOW = factory
	}
}

// ProcessCustomerOrders processes every pending order of the customer in a
// single transaction: discounts, stock verification, inventory decrement,
// status transition, and audit logging commit together or not at all. Any
// failure rolls back the whole batch and is returned to the caller
// unchanged.
func (s *OrderService) ProcessCustomerOrders(
	ctx context.Context,
	customerID int64,
) ([]order.Order, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCustomerID, customerID)
	}

	ctx, span := otel.Tracer("ordersvc").Start(ctx, "ProcessCustomerOrders",
		trace.WithAttributes(attribute.Int64("customer.id", customerID)),
	)
	defer span.End()

	work := s.newUOW()

	if err := work.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Error("Failed to roll back transaction", "customer_id", customerID, "error", err)
		}
	}()

	orders, err := s.processPendingOrders(ctx, work, customerID)
	if err != nil {
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "Processed customer orders",
		"customer_id", customerID,
		"orders", len(orders),
	)

	return orders, nil
}

func (s *OrderService) processPendingOrders(
	ctx context.Context,
	work unitOfWork,
	customerID int64,
) ([]order.Order, error) {
	cust, err := work.CustomerRepository().GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	orders, err := work.OrderRepository().GetPendingOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		err := s.processor.Process(
			ctx,
			cust,
			&orders[i],
			work.OrderRepository(),
			work.InventoryRepository(),
		)
		if err != nil {
			return nil, err
		}
	}

	// Audit events commit or roll back with the order mutations.
	for i := range orders {
		if err := s.stageProcessedEvent(ctx, work.OutboxRepository(), &orders[i]); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (s *OrderService) stageProcessedEvent(
	ctx context.Context,
	outboxRepo ioutboxrepo.IOutboxRepository,
	ord *order.Order,
) error {
	payload, err := json.Marshal(ord)
	if err != nil {
		return fmt.Errorf("marshal processed order %d: %w", ord.ID, err)
	}

	return outboxRepo.Insert(ctx, outbox.OutboxMessage{
		QueueName:   processedQueue,
		RoutingKey:  processedQueue,
		Payload:     payload,
		ContentType: outboxContentType,
		MaxRetries:  outboxMaxRetries,
	})
}

// GetOrders retrieves orders with their items based on filter.
func (s *OrderService) GetOrders(
	ctx context.Context,
	filter order.QueryOrdersModel,
) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &filter)
	if err != nil {
		return nil, err
	}

	if orders == nil {
		return []order.Order{}, nil
	}

	return orders, nil
}
