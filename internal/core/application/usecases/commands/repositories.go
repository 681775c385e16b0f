// Package commands contains the operations that change shipment state.
// Every command is validated by its constructor, talks to the tracking backend
// through ports.TrackingProvider and records the outcome in the local mirror
// inside a unit of work.
package commands

import (
	"context"

	"shipments/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order mirror within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SyncLogRepoFactory provides access to the sync history within a transaction.
	SyncLogRepoFactory interface {
		SyncLogRepository() ports.SyncLogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SyncUoW manages transactions that write an order and its sync history together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   syncLog := uow.SyncLogRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SyncUoW interface {
		TxManager
		OrderRepoFactory
		SyncLogRepoFactory
	}

	// SyncUoWFactory creates new sync unit of work instances.
	SyncUoWFactory interface {
		Create() SyncUoW
	}
)
