package commands_test

import (
	"context"
	"errors"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/college"
	"inventory/internal/core/domain/model/custody"
	"inventory/internal/core/domain/model/item"
	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/request"
	"inventory/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, r *request.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) Transition(
	ctx context.Context, r *request.Request, expected request.Status,
) error {
	args := m.Called(ctx, r, expected)
	return args.Error(0)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockStockRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockStockRepository) AdjustCentralStock(ctx context.Context, itemID kernel.UUID, delta int) error {
	args := m.Called(ctx, itemID, delta)
	return args.Error(0)
}

func (m *MockStockRepository) ReserveCentralStock(ctx context.Context, itemID kernel.UUID, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *MockStockRepository) GetLowStock(_ context.Context) ([]*item.Item, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCustodyRepository struct{ mock.Mock }

func (m *MockCustodyRepository) Adjust(ctx context.Context, collegeID, itemID kernel.UUID, delta int) error {
	args := m.Called(ctx, collegeID, itemID, delta)
	return args.Error(0)
}

func (m *MockCustodyRepository) Release(ctx context.Context, collegeID, itemID kernel.UUID, quantity int) error {
	args := m.Called(ctx, collegeID, itemID, quantity)
	return args.Error(0)
}

func (m *MockCustodyRepository) Get(_ context.Context, _, _ kernel.UUID) (*custody.Balance, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockCustodyRepository) GetByCollege(_ context.Context, _ kernel.UUID) ([]*custody.Balance, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCollegeRepository struct{ mock.Mock }

func (m *MockCollegeRepository) Add(ctx context.Context, c *college.College) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollegeRepository) Get(ctx context.Context, id kernel.UUID) (*college.College, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*college.College), args.Error(1)
}

func (m *MockCollegeRepository) GetAll(_ context.Context) ([]*college.College, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Append(ctx context.Context, entry ports.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLog) ReadAll(_ context.Context) ([]ports.AuditEntry, error) {
	return nil, errors.New("not implemented in mock")
}

type MockRequestUoW struct{ mock.Mock }

func (m *MockRequestUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockStockUoW struct{ mock.Mock }

func (m *MockStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockCollegeUoW struct{ mock.Mock }

func (m *MockCollegeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCollegeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCollegeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCollegeUoW) CollegeRepository() ports.CollegeRepository {
	args := m.Called()
	return args.Get(0).(ports.CollegeRepository)
}

type MockCollegeUoWFactory struct{ mock.Mock }

func (m *MockCollegeUoWFactory) Create() commands.CollegeUoW {
	args := m.Called()
	return args.Get(0).(commands.CollegeUoW)
}

type MockRequestStockUoW struct{ mock.Mock }

func (m *MockRequestStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestStockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockRequestStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockRequestStockUoWFactory struct{ mock.Mock }

func (m *MockRequestStockUoWFactory) Create() commands.RequestStockUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestStockUoW)
}

type MockRequestCollegeStockUoW struct{ mock.Mock }

func (m *MockRequestCollegeStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestCollegeStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestCollegeStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestCollegeStockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockRequestCollegeStockUoW) CollegeRepository() ports.CollegeRepository {
	args := m.Called()
	return args.Get(0).(ports.CollegeRepository)
}

func (m *MockRequestCollegeStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockRequestCollegeStockUoWFactory struct{ mock.Mock }

func (m *MockRequestCollegeStockUoWFactory) Create() commands.RequestCollegeStockUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestCollegeStockUoW)
}

type MockRequestCustodyUoW struct{ mock.Mock }

func (m *MockRequestCustodyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestCustodyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestCustodyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRequestCustodyUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockRequestCustodyUoW) CustodyRepository() ports.CustodyRepository {
	args := m.Called()
	return args.Get(0).(ports.CustodyRepository)
}

type MockRequestCustodyUoWFactory struct{ mock.Mock }

func (m *MockRequestCustodyUoWFactory) Create() commands.RequestCustodyUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestCustodyUoW)
}

// newPendingRequest builds a request in Pending status for handler tests.
func newPendingRequest(kind request.Kind, quantity int) *request.Request {
	r, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), quantity, "lab", kind)
	if err != nil {
		panic(err)
	}
	return r
}

// restoreRequestAt builds a request in the given status for handler tests.
func restoreRequestAt(kind request.Kind, status request.Status, quantity int) *request.Request {
	var courierID *kernel.UUID
	switch status {
	case request.InTransitToCollege, request.InTransitToInventory,
		request.DeliveredToCollege, request.ReceivedAtInventory:
		id := kernel.NewUUID()
		courierID = &id
	}

	r, err := request.RestoreRequest(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		quantity, "lab", kind, status, "", courierID, time.Now().UTC(),
	)
	if err != nil {
		panic(err)
	}
	return r
}
