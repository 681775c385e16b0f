package commands_test

import (
	"context"
	"io"
	"log/slog"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *shipment.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *shipment.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Save(ctx context.Context, o *shipment.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id string) (*shipment.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Order), args.Error(1)
}
func (m *MockOrderRepository) Find(ctx context.Context, f shipment.ListFilter) ([]*shipment.Order, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]*shipment.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInTransit(ctx context.Context) ([]*shipment.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*shipment.Order), args.Error(1)
}

type MockSyncLogRepository struct{ mock.Mock }

func (m *MockSyncLogRepository) Add(ctx context.Context, r ports.SyncRecord) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockSyncLogRepository) ListByOrder(ctx context.Context, id string) ([]ports.SyncRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]ports.SyncRecord), args.Error(1)
}

// MockUoW satisfies both OrderUoW and SyncUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) SyncLogRepository() ports.SyncLogRepository {
	return m.Called().Get(0).(ports.SyncLogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockSyncUoWFactory struct{ mock.Mock }

func (m *MockSyncUoWFactory) Create() commands.SyncUoW {
	return m.Called().Get(0).(commands.SyncUoW)
}

type MockTrackingProvider struct{ mock.Mock }

func (m *MockTrackingProvider) CreateShipment(ctx context.Context, id string) (ports.Shipment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Shipment), args.Error(1)
}
func (m *MockTrackingProvider) TrackByOrderID(ctx context.Context, id string) (ports.TrackResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.TrackResult), args.Error(1)
}
func (m *MockTrackingProvider) TrackByAWB(ctx context.Context, awb string) (ports.TrackResult, error) {
	args := m.Called(ctx, awb)
	return args.Get(0).(ports.TrackResult), args.Error(1)
}
func (m *MockTrackingProvider) UpdateTrackingInfo(
	ctx context.Context, id string, u ports.TrackingUpdate,
) (shipment.OrderSnapshot, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(shipment.OrderSnapshot), args.Error(1)
}
func (m *MockTrackingProvider) SyncStatus(ctx context.Context, id string) (ports.SyncResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.SyncResult), args.Error(1)
}
func (m *MockTrackingProvider) GetAvailableCouriers(ctx context.Context, q ports.CourierQuery) ([]ports.CourierOption, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]ports.CourierOption), args.Error(1)
}
func (m *MockTrackingProvider) GetPickupLocations(ctx context.Context) ([]ports.PickupLocation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ports.PickupLocation), args.Error(1)
}
func (m *MockTrackingProvider) RequestReturn(ctx context.Context, id, reason string) (shipment.OrderSnapshot, error) {
	args := m.Called(ctx, id, reason)
	return args.Get(0).(shipment.OrderSnapshot), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, e ports.StatusChangedEvent) error {
	return m.Called(ctx, e).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoredOrder(id string, status shipment.Status, awb string) *shipment.Order {
	o, err := shipment.RestoreOrder(shipment.State{
		ID:         id,
		ShipmentID: "SHP-" + id,
		AWBNumber:  awb,
		Status:     status,
		Payment:    shipment.Payment{Status: shipment.PaymentPaid, Amount: 999},
	})
	if err != nil {
		panic(err)
	}
	return o
}

// readUoW expects the short read transaction used before remote calls.
func readUoW(ctx context.Context, repo *MockOrderRepository) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow
}
