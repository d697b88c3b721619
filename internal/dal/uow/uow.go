package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/avetra-labs/oms/internal/dal/interfaces/icustomerrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/iinventoryrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/iorderrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/ioutboxrepo"
	"github.com/avetra-labs/oms/internal/dal/postgres"
	customerrepo "github.com/avetra-labs/oms/internal/dal/repositories/customer/postgres"
	inventoryrepo "github.com/avetra-labs/oms/internal/dal/repositories/inventory/postgres"
	orderrepo "github.com/avetra-labs/oms/internal/dal/repositories/order/postgres"
	outboxrepo "github.com/avetra-labs/oms/internal/dal/repositories/outbox/postgres"
	"github.com/avetra-labs/oms/pkg/clock"
)

// unitOfWork groups the customer, order, inventory, and outbox repositories
// over a single Postgres transaction. Before Begin the repositories run
// against the pool; after Begin they are rebound to the transaction.
type unitOfWork struct {
	client *postgres.Client
	clk    clock.Clock
	tx     pgx.Tx

	customerRepo  icustomerrepo.ICustomerRepository
	orderRepo     iorderrepo.IOrderRepository
	inventoryRepo iinventoryrepo.IInventoryRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

// NewUnitOfWork creates a new unit of work over the Postgres client.
func NewUnitOfWork(client *postgres.Client, clk clock.Clock) *unitOfWork {
	u := &unitOfWork{
		client: client,
		clk:    clk,
	}
	u.bind(client.Pool())

	return u
}

func (u *unitOfWork) bind(conn postgres.GenericConn) {
	u.customerRepo = customerrepo.NewPostgresCustomerRepository(conn)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(conn, u.clk)
	u.inventoryRepo = inventoryrepo.NewPostgresInventoryRepository(conn)
	u.outboxRepo = outboxrepo.NewPostgresOutboxRepository(conn, u.clk)
}

func (u *unitOfWork) CustomerRepository() icustomerrepo.ICustomerRepository {
	return u.customerRepo
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) InventoryRepository() iinventoryrepo.IInventoryRepository {
	return u.inventoryRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

// Begin opens the transaction and rebinds the repositories to it.
func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.bind(tx)

	return nil
}

// Commit commits the transaction.
func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	return u.tx.Commit(ctx)
}

// Rollback aborts the transaction. Safe to call after Commit, so callers may
// defer it unconditionally for a guaranteed release.
func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	if err := u.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}

	return nil
}
