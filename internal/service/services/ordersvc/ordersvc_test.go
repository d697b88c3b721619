package ordersvc

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra-labs/oms/internal/dal/interfaces/icustomerrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/iinventoryrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/iorderrepo"
	"github.com/avetra-labs/oms/internal/dal/interfaces/ioutboxrepo"
	"github.com/avetra-labs/oms/internal/service/models/customer"
	"github.com/avetra-labs/oms/internal/service/models/order"
	"github.com/avetra-labs/oms/internal/service/models/orderitem"
	"github.com/avetra-labs/oms/internal/service/models/orderstatus"
	"github.com/avetra-labs/oms/internal/service/models/outbox"
)

// --- Mock implementations ---

type mockCustomerRepo struct {
	customers map[int64]*customer.Customer
}

func (m *mockCustomerRepo) GetByID(_ context.Context, id int64) (*customer.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return c, nil
}

type mockOrderRepo struct {
	pending    []order.Order
	pendingErr error
}

func (m *mockOrderRepo) GetPendingOrders(_ context.Context, _ int64) ([]order.Order, error) {
	if m.pendingErr != nil {
		return nil, m.pendingErr
	}
	return m.pending, nil
}

func (m *mockOrderRepo) Query(_ context.Context, _ *order.QueryOrdersModel) ([]order.Order, error) {
	return m.pending, nil
}

func (m *mockOrderRepo) UpdateOrder(_ context.Context, _ *order.Order) error { return nil }

func (m *mockOrderRepo) UpdateStatus(_ context.Context, _ *order.Order) error { return nil }

func (m *mockOrderRepo) InsertLog(_ context.Context, _ int64, _ string) error { return nil }

type mockInventoryRepo struct{}

func (m *mockInventoryRepo) AreAllItemsInStock(_ context.Context, _ int64) (bool, error) {
	return true, nil
}

func (m *mockInventoryRepo) ReduceInventory(_ context.Context, _ int64) error { return nil }

type mockOutboxRepo struct {
	inserted  []outbox.OutboxMessage
	insertErr error
}

func (m *mockOutboxRepo) Insert(_ context.Context, msg outbox.OutboxMessage) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, msg)
	return nil
}

func (m *mockOutboxRepo) GetPendingMessages(_ context.Context, _ int) ([]outbox.OutboxMessage, error) {
	return nil, nil
}

func (m *mockOutboxRepo) Delete(_ context.Context, _ int64) error { return nil }

func (m *mockOutboxRepo) UpdateRetry(_ context.Context, _ int64, _ int, _ string, _ time.Time) error {
	return nil
}

type mockUOW struct {
	customers *mockCustomerRepo
	orders    *mockOrderRepo
	inventory *mockInventoryRepo
	outbox    *mockOutboxRepo

	beginErr  error
	commitErr error

	began      bool
	committed  bool
	rolledBack bool
}

func (m *mockUOW) Begin(_ context.Context) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	m.began = true
	return nil
}

func (m *mockUOW) Commit(_ context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}

func (m *mockUOW) Rollback(_ context.Context) error {
	if !m.committed {
		m.rolledBack = true
	}
	return nil
}

func (m *mockUOW) CustomerRepository() icustomerrepo.ICustomerRepository { return m.customers }

func (m *mockUOW) OrderRepository() iorderrepo.IOrderRepository { return m.orders }

func (m *mockUOW) InventoryRepository() iinventoryrepo.IInventoryRepository { return m.inventory }

func (m *mockUOW) OutboxRepository() ioutboxrepo.IOutboxRepository { return m.outbox }

type recordingProcessor struct {
	err       error
	processed []int64
}

func (p *recordingProcessor) Process(
	_ context.Context,
	_ *customer.Customer,
	ord *order.Order,
	_ iorderrepo.IOrderRepository,
	_ iinventoryrepo.IInventoryRepository,
) error {
	if p.err != nil {
		return p.err
	}
	p.processed = append(p.processed, ord.ID)
	ord.Status = orderstatus.StatusReady
	return nil
}

// --- Helpers ---

func newMockUOW() *mockUOW {
	return &mockUOW{
		customers: &mockCustomerRepo{customers: map[int64]*customer.Customer{
			1: {ID: 1, Name: "Jan Novak", IsVip: true},
		}},
		orders:    &mockOrderRepo{},
		inventory: &mockInventoryRepo{},
		outbox:    &mockOutboxRepo{},
	}
}

func newService(work *mockUOW, proc *recordingProcessor) *OrderService {
	return MustNewOrderService(
		WithProcessor(proc),
		WithUnitOfWorkFactory(func() unitOfWork { return work }),
	)
}

func somePendingOrders() []order.Order {
	return []order.Order{
		{ID: 10, CustomerID: 1, Status: orderstatus.StatusPending, Items: []orderitem.OrderItem{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(500)},
		}},
		{ID: 11, CustomerID: 1, Status: orderstatus.StatusPending, Items: []orderitem.OrderItem{
			{Quantity: 2, UnitPrice: decimal.NewFromInt(6000)},
		}},
	}
}

// --- Tests ---

func TestProcessCustomerOrders_InvalidCustomerID(t *testing.T) {
	factoryCalled := false
	svc := MustNewOrderService(
		WithProcessor(&recordingProcessor{}),
		WithUnitOfWorkFactory(func() unitOfWork {
			factoryCalled = true
			return newMockUOW()
		}),
	)

	for _, id := range []int64{0, -1} {
		_, err := svc.ProcessCustomerOrders(context.Background(), id)
		require.ErrorIs(t, err, ErrInvalidCustomerID)
	}

	// Rejected before any resource is acquired.
	assert.False(t, factoryCalled)
}

func TestProcessCustomerOrders_CustomerNotFound(t *testing.T) {
	work := newMockUOW()
	svc := newService(work, &recordingProcessor{})

	_, err := svc.ProcessCustomerOrders(context.Background(), 42)

	require.ErrorIs(t, err, customer.ErrNotFound)
	assert.True(t, work.began)
	assert.True(t, work.rolledBack)
	assert.False(t, work.committed)
}

func TestProcessCustomerOrders_Success(t *testing.T) {
	work := newMockUOW()
	work.orders.pending = somePendingOrders()
	proc := &recordingProcessor{}
	svc := newService(work, proc)

	orders, err := svc.ProcessCustomerOrders(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, work.committed)
	assert.False(t, work.rolledBack)

	// Orders are processed in fetch order and returned mutated.
	assert.Equal(t, []int64{10, 11}, proc.processed)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, orderstatus.StatusReady, o.Status)
	}

	// One audit event staged per processed order, in-transaction.
	assert.Len(t, work.outbox.inserted, 2)
}

func TestProcessCustomerOrders_NoPendingOrders(t *testing.T) {
	work := newMockUOW()
	svc := newService(work, &recordingProcessor{})

	orders, err := svc.ProcessCustomerOrders(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.True(t, work.committed)
	assert.Empty(t, work.outbox.inserted)
}

func TestProcessCustomerOrders_ProcessorFailureRollsBackBatch(t *testing.T) {
	work := newMockUOW()
	work.orders.pending = somePendingOrders()
	svc := newService(work, &recordingProcessor{err: order.ErrItemsNotLoaded})

	_, err := svc.ProcessCustomerOrders(context.Background(), 1)

	require.ErrorIs(t, err, order.ErrItemsNotLoaded)
	assert.True(t, work.rolledBack)
	assert.False(t, work.committed)
	assert.Empty(t, work.outbox.inserted)
}

func TestProcessCustomerOrders_FetchFailureRollsBack(t *testing.T) {
	work := newMockUOW()
	work.orders.pendingErr = assert.AnError
	svc := newService(work, &recordingProcessor{})

	_, err := svc.ProcessCustomerOrders(context.Background(), 1)

	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, work.rolledBack)
}

func TestProcessCustomerOrders_OutboxFailureRollsBack(t *testing.T) {
	work := newMockUOW()
	work.orders.pending = somePendingOrders()
	work.outbox.insertErr = assert.AnError
	svc := newService(work, &recordingProcessor{})

	_, err := svc.ProcessCustomerOrders(context.Background(), 1)

	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, work.rolledBack)
	assert.False(t, work.committed)
}

func TestProcessCustomerOrders_BeginFailure(t *testing.T) {
	work := newMockUOW()
	work.beginErr = assert.AnError
	svc := newService(work, &recordingProcessor{})

	_, err := svc.ProcessCustomerOrders(context.Background(), 1)

	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, work.committed)
}

func TestProcessCustomerOrders_CommitFailure(t *testing.T) {
	work := newMockUOW()
	work.commitErr = assert.AnError
	svc := newService(work, &recordingProcessor{})

	_, err := svc.ProcessCustomerOrders(context.Background(), 1)

	require.ErrorIs(t, err, assert.AnError)
	assert.True(t, work.rolledBack)
}

func TestGetOrders_EmptyResult(t *testing.T) {
	work := newMockUOW()
	svc := newService(work, &recordingProcessor{})

	orders, err := svc.GetOrders(context.Background(), order.QueryOrdersModel{CustomerIds: []int64{5}})

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
