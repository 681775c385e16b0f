package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shipments/internal/adapters/out/postgres/orderrepo"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite checks the order mirror against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Duplicate_Fails() {
	ctx := context.Background()
	o := suite.order(shipment.State{ID: "ord-1"})

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().Error(suite.repository.Add(ctx, o))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsTracking() {
	ctx := context.Background()
	shipped := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	scan := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

	o := suite.order(shipment.State{
		ID:         "ord-2",
		ShipmentID: "SHP-2",
		AWBNumber:  "AWB2",
		Courier:    "BlueDart",
		InvoiceURL: "https://cdn/inv-2.pdf",
		Status:     shipment.OutForDelivery,
		Payment:    shipment.Payment{Status: shipment.PaymentPaid, Amount: 1299.5},
		Tracking: &shipment.Tracking{
			AWB:           "AWB2",
			CourierName:   "BlueDart",
			CurrentStatus: "Out For Delivery",
			ShippedDate:   &shipped,
			Events: []shipment.TrackingEvent{
				{Status: "In Transit", Location: "Pune", Activity: "Arrived at hub", Date: &scan},
			},
		},
	})
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, "ord-2")
	suite.Require().NoError(err)
	suite.Equal(shipment.OutForDelivery, got.Status())
	suite.Require().NotNil(got.Tracking())
	suite.True(shipped.Equal(*got.Tracking().ShippedDate))
	suite.Nil(got.Tracking().ExpectedDeliveryDate)
	suite.Require().Len(got.Tracking().Events, 1)
	suite.Equal("Pune", got.Tracking().Events[0].Location)
	suite.InDelta(1299.5, got.Payment().Amount, 0.001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownStatusSurvives() {
	ctx := context.Background()
	o := suite.order(shipment.State{ID: "ord-u", Status: shipment.Unknown})

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, "ord-u")
	suite.Require().NoError(err)
	suite.Equal(shipment.Unknown, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), "missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()

	suite.Run("non-existent order", func() {
		err := suite.repository.Update(ctx, suite.order(shipment.State{ID: "ghost"}))
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("status change persists", func() {
		o := suite.order(shipment.State{ID: "ord-3", ShipmentID: "SHP-3", AWBNumber: "AWB3", Status: shipment.Shipped})
		suite.Require().NoError(suite.repository.Add(ctx, o))

		suite.Require().NoError(o.ChangeStatus(shipment.Delivered, shipment.PermissiveFromUnordered))
		suite.Require().NoError(suite.repository.Update(ctx, o))

		got, err := suite.repository.Get(ctx, "ord-3")
		suite.Require().NoError(err)
		suite.Equal(shipment.Delivered, got.Status())
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_Upserts() {
	ctx := context.Background()
	o := suite.order(shipment.State{ID: "ord-4"})
	suite.Require().NoError(suite.repository.Save(ctx, o))

	o.ApplySnapshot(shipment.OrderSnapshot{AWBNumber: "AWB4", Status: "Shipped"})
	suite.Require().NoError(suite.repository.Save(ctx, o))

	got, err := suite.repository.Get(ctx, "ord-4")
	suite.Require().NoError(err)
	suite.Equal("AWB4", got.AWBNumber())
	suite.Equal(shipment.Shipped, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{ID: "ord-a"})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{
		ID: "ord-b", AWBNumber: "XB100", Payment: shipment.Payment{Status: shipment.PaymentPaid},
	})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{ID: "ord_c"})))

	ids := func(filter shipment.ListFilter) []string {
		orders, err := suite.repository.Find(ctx, filter)
		suite.Require().NoError(err)
		out := make([]string, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID())
		}
		return out
	}

	suite.Equal([]string{"ord-a", "ord-b", "ord_c"}, ids(shipment.ListFilter{View: shipment.ViewAll}))
	suite.Equal([]string{"ord-b"}, ids(shipment.ListFilter{View: shipment.ViewShipped}))
	suite.Equal([]string{"ord-a", "ord_c"}, ids(shipment.ListFilter{View: shipment.ViewUnshipped}))
	suite.Equal([]string{"ord-b"}, ids(shipment.ListFilter{View: shipment.ViewPaid}))
	suite.Equal([]string{"ord-b"}, ids(shipment.ListFilter{Search: "xb1"}))
	suite.Equal([]string{"ord_c"}, ids(shipment.ListFilter{Search: "_"}))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind_PaidMatchesAnyCase() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{
		ID: "ord-lower", Payment: shipment.Payment{Status: "paid"},
	})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{
		ID: "ord-upper", Payment: shipment.Payment{Status: "PAID"},
	})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{
		ID: "ord-pending", Payment: shipment.Payment{Status: shipment.PaymentPending},
	})))

	orders, err := suite.repository.Find(ctx, shipment.ListFilter{View: shipment.ViewPaid})
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("ord-lower", orders[0].ID())
	suite.Equal("ord-upper", orders[1].ID())
	for _, o := range orders {
		suite.True(shipment.ListFilter{View: shipment.ViewPaid}.Matches(o))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInTransit() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{ID: "unshipped"})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{
		ID: "moving", ShipmentID: "SHP-1", AWBNumber: "AWB1", Status: shipment.Shipped,
	})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{
		ID: "awaiting", ShipmentID: "SHP-2", Status: shipment.Processing,
	})))
	suite.Require().NoError(suite.repository.Add(ctx, suite.order(shipment.State{
		ID: "done", ShipmentID: "SHP-3", AWBNumber: "AWB3", Status: shipment.DeliveredEarly,
	})))

	orders, err := suite.repository.GetAllInTransit(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("awaiting", orders[0].ID())
	suite.Equal("moving", orders[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) order(st shipment.State) *shipment.Order {
	o, err := shipment.RestoreOrder(st)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
