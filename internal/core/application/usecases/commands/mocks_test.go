package commands_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"kioskhub/internal/core/domain/model/catalog"
	"kioskhub/internal/core/domain/model/kernel"
	"kioskhub/internal/core/domain/model/order"
	"kioskhub/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetLatestForKiosk(ctx context.Context, kioskID int64) (*order.Order, error) {
	args := m.Called(ctx, kioskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ApplyPatch(ctx context.Context, id int64, patch ports.OrderPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) ResolveItem(ctx context.Context, ref kernel.ItemRef) (*catalog.Item, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockCatalogRepository) SlugTaken(ctx context.Context, slug string, exclude kernel.ItemRef) (bool, error) {
	args := m.Called(ctx, slug, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) AddItem(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) PatchItem(ctx context.Context, ref kernel.ItemRef, patch ports.ItemPatch) error {
	args := m.Called(ctx, ref, patch)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteItem(_ context.Context, _ kernel.ItemRef) error {
	return errors.New("not implemented in mock")
}

func (m *MockCatalogRepository) GetKiosk(ctx context.Context, id int64) (*catalog.Kiosk, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Kiosk), args.Error(1)
}

func (m *MockCatalogRepository) KioskExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) AddKiosk(ctx context.Context, kiosk *catalog.Kiosk) error {
	args := m.Called(ctx, kiosk)
	return args.Error(0)
}

func (m *MockCatalogRepository) PatchKiosk(ctx context.Context, id int64, patch ports.KioskPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteKiosk(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUnitOfWork) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() (ports.UnitOfWork, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.UnitOfWork), args.Error(1)
}
