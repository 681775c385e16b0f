package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shipments/api"
	httpin "shipments/internal/adapters/in/http"
	"shipments/internal/adapters/out/kafka"
	"shipments/internal/adapters/out/memory"
	"shipments/internal/adapters/out/postgres"
	"shipments/internal/adapters/out/session"
	"shipments/internal/adapters/out/trackingapi"
	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/application/usecases/queries"
	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/jobs"

	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot owns every adapter of the process and builds the handlers
// on top of them.
type CompositionRoot struct {
	config     Config
	policy     shipment.Policy
	uowFactory ports.UnitOfWorkFactory
	sessions   ports.SessionStore
	provider   ports.TrackingProvider
	publisher  ports.EventPublisher
	logger     *slog.Logger

	closers []func() error
}

// NewCompositionRoot connects the configured adapters. Storage, sessions and
// events fall back to in-process implementations when their host is unset.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := shipment.ParsePolicy(config.TransitionPolicy)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config: config,
		policy: policy,
		logger: logger,
	}

	if err = c.connectStorage(); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.connectSessions(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	client, err := trackingapi.NewClient(trackingapi.Config{
		BaseURL: config.TrackingAPIURL,
		Timeout: config.HTTPClientTimeout,
	}, c.sessions, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.provider = client

	c.connectPublisher()
	return c, nil
}

func (c *CompositionRoot) connectStorage() error {
	if !c.config.UsesDatabase() {
		c.logger.Info("Using in-memory order mirror")
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
		return nil
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.config.DBHost, c.config.DBPort, c.config.DBUser,
		c.config.DBPassword, c.config.DBName, c.config.DBSslMode)

	// The pool is registered for Close before the first round trip, so a
	// failed ping or migration does not leak it.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = sqlDB.Ping(); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	return nil
}

func (c *CompositionRoot) connectSessions(ctx context.Context) error {
	if c.config.RedisHost == "" {
		c.sessions = session.NewMemoryStore()
	} else {
		store, err := session.NewRedisStore(ctx, session.RedisConfig{
			Host: c.config.RedisHost,
			Port: c.config.RedisPort,
			DB:   c.config.RedisDB,
		})
		if err != nil {
			return err
		}
		c.closers = append(c.closers, store.Close)
		c.sessions = store
	}

	if c.config.TrackingAPIToken != "" {
		return c.sessions.Set(ctx, ports.SessionKeyToken, c.config.TrackingAPIToken)
	}
	return nil
}

func (c *CompositionRoot) connectPublisher() {
	if c.config.KafkaHost == "" {
		c.publisher = kafka.NopPublisher{}
		return
	}
	publisher := kafka.NewPublisher(c.config.KafkaHost, c.config.KafkaStatusTopic, c.logger)
	c.closers = append(c.closers, publisher.Close)
	c.publisher = publisher
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errList = append(errList, err)
		}
	}
	c.closers = nil
	return errors.Join(errList...)
}

// Sessions is the credential store used by the tracking client.
func (c *CompositionRoot) Sessions() ports.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) orders() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateSyncStatusCommandHandler() commands.SyncStatusCommandHandler {
	var f commands.SyncUoWFactory = FuncSyncUoWFactory(func() commands.SyncUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncStatusCommandHandler(f, c.provider, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusCommandHandler(f, c.provider, c.publisher, c.policy, c.logger)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.provider)
}

func (c *CompositionRoot) CreateUpdateTrackingInfoCommandHandler() commands.UpdateTrackingInfoCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTrackingInfoCommandHandler(f, c.provider, c.publisher, c.policy, c.logger)
}

func (c *CompositionRoot) CreateRequestReturnCommandHandler() commands.RequestReturnCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestReturnCommandHandler(f, c.provider, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.provider, c.orders())
}

func (c *CompositionRoot) CreateTrackByAWBQueryHandler() queries.TrackByAWBQueryHandler {
	return queries.NewTrackByAWBQueryHandler(c.provider)
}

func (c *CompositionRoot) CreateGetAvailableCouriersQueryHandler() queries.GetAvailableCouriersQueryHandler {
	return queries.NewGetAvailableCouriersQueryHandler(c.provider)
}

func (c *CompositionRoot) CreateListPickupLocationsQueryHandler() queries.ListPickupLocationsQueryHandler {
	return queries.NewListPickupLocationsQueryHandler(c.provider)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.orders())
}

func (c *CompositionRoot) CreateDescribeStatusQueryHandler() queries.DescribeStatusQueryHandler {
	return queries.NewDescribeStatusQueryHandler(c.orders(), c.policy)
}

func (c *CompositionRoot) CreateGetSyncHistoryQueryHandler() queries.GetSyncHistoryQueryHandler {
	return queries.NewGetSyncHistoryQueryHandler(c.uowFactory.Create().SyncLogRepository())
}

// CreateStatusSyncJob returns the sweep job, or nil when no schedule is set.
func (c *CompositionRoot) CreateStatusSyncJob() *jobs.StatusSyncJob {
	if c.config.SyncSchedule == "" {
		return nil
	}
	handler := c.CreateSyncStatusCommandHandler()
	return jobs.NewStatusSyncJob(&handler, c.orders(), c.config.SyncSchedule, c.logger)
}

// RunStatusSweep reconciles every in-transit order once, whether or not a
// schedule is configured.
func (c *CompositionRoot) RunStatusSweep(ctx context.Context) (jobs.SweepReport, error) {
	handler := c.CreateSyncStatusCommandHandler()
	return jobs.NewStatusSyncJob(&handler, c.orders(), c.config.SyncSchedule, c.logger).RunOnce(ctx)
}

// CreateJobManager collects the configured jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if job := c.CreateStatusSyncJob(); job != nil {
		scheduled = append(scheduled, job)
	}
	return jobs.NewJobManager(scheduled...)
}

// CreateHTTPServer builds the admin API.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	server := httpin.NewServer(httpin.Handlers{
		SyncStatus:      c.CreateSyncStatusCommandHandler(),
		UpdateStatus:    c.CreateUpdateStatusCommandHandler(),
		CreateShipment:  c.CreateCreateShipmentCommandHandler(),
		UpdateTracking:  c.CreateUpdateTrackingInfoCommandHandler(),
		RequestReturn:   c.CreateRequestReturnCommandHandler(),
		TrackOrder:      c.CreateTrackOrderQueryHandler(),
		TrackByAWB:      c.CreateTrackByAWBQueryHandler(),
		Couriers:        c.CreateGetAvailableCouriersQueryHandler(),
		PickupLocations: c.CreateListPickupLocationsQueryHandler(),
		ListShipments:   c.CreateListShipmentsQueryHandler(),
		DescribeStatus:  c.CreateDescribeStatusQueryHandler(),
		SyncHistory:     c.CreateGetSyncHistoryQueryHandler(),
	})
	return httpin.NewEcho(server, doc, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSyncUoWFactory func() commands.SyncUoW

func (f FuncSyncUoWFactory) Create() commands.SyncUoW {
	return f()
}
