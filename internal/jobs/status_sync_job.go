package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipments/internal/core/application/usecases/commands"
	"shipments/internal/core/domain/model/shipment"

	"github.com/robfig/cron/v3"
)

const defaultPerOrderTimeout = 30 * time.Second

type statusSyncer interface {
	Handle(ctx context.Context, cmd commands.SyncStatusCommand) (commands.SyncStatusResult, error)
}

type inTransitLister interface {
	GetAllInTransit(ctx context.Context) ([]*shipment.Order, error)
}

// SweepReport summarizes one pass over the in-transit orders.
type SweepReport struct {
	Checked int
	Changed int
	Failed  int
}

// StatusSyncJob periodically reconciles every in-transit order with its carrier.
// Orders are synced one at a time; a failed order is logged and skipped.
type StatusSyncJob struct {
	syncer   statusSyncer
	orders   inTransitLister
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusSyncJob creates the sweep. schedule is a cron spec with a seconds
// field, e.g. "0 */15 * * * *".
func NewStatusSyncJob(syncer statusSyncer, orders inTransitLister, schedule string, logger *slog.Logger) *StatusSyncJob {
	logger = logger.With("component", "status_sync_job")
	return &StatusSyncJob{
		syncer:   syncer,
		orders:   orders,
		schedule: schedule,
		timeout:  defaultPerOrderTimeout,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start schedules the sweep.
func (j *StatusSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Status sync sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *StatusSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status sync job stopped")
}

// RunOnce performs a single sweep. Only listing the orders can fail it.
func (j *StatusSyncJob) RunOnce(ctx context.Context) (SweepReport, error) {
	orders, err := j.orders.GetAllInTransit(ctx)
	if err != nil {
		return SweepReport{}, err
	}

	var report SweepReport
	for _, o := range orders {
		if ctx.Err() != nil {
			break
		}
		report.Checked++

		cmd, err := commands.NewSyncStatusCommand(o.ID())
		if err != nil {
			report.Failed++
			continue
		}

		orderCtx, cancel := context.WithTimeout(ctx, j.timeout)
		res, err := j.syncer.Handle(orderCtx, cmd)
		cancel()
		if err != nil {
			report.Failed++
			j.logger.WarnContext(ctx, "Order sync failed", "order_id", o.ID(), "error", err)
			continue
		}
		if res.Changed {
			report.Changed++
			j.logger.InfoContext(ctx, "Order synced",
				"order_id", o.ID(),
				"status", res.Order.Status().String(),
				"fields", res.ChangedFields,
			)
		}
	}

	j.logger.DebugContext(ctx, "Status sync sweep finished",
		"checked", report.Checked,
		"changed", report.Changed,
		"failed", report.Failed,
	)
	return report, nil
}
