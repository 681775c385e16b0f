package queries_test

import (
	"context"

	"shipments/internal/adapters/out/memory"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

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

func seededReader(orders ...shipment.State) (queries.OrderReader, *memory.Store) {
	store := memory.NewStore()
	for _, s := range orders {
		o, err := shipment.RestoreOrder(s)
		if err != nil {
			panic(err)
		}
		if err := store.Seed(o); err != nil {
			panic(err)
		}
	}
	return memory.NewUnitOfWorkFactory(store).Create().OrderRepository(), store
}
