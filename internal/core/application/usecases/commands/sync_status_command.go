package commands

import (
	"errors"
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrSyncStatusCommandIsNotConstructed = errors.New(
	"SyncStatusCommand must be created via NewSyncStatusCommand constructor",
)

// SyncStatusCommand asks the backend to reconcile an order with its carrier
// and merges the answer into the local mirror.
//
// Example:
//
//	cmd, err := NewSyncStatusCommand("66f1c0a2e4b0")
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    fmt.Println(errs.UserMessage(err, "Failed to sync order status"))
//	}
type SyncStatusCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewSyncStatusCommand(orderID string) (SyncStatusCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return SyncStatusCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	return SyncStatusCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SyncStatusCommand) Validate() error {
	return c.guard.Validate(ErrSyncStatusCommandIsNotConstructed)
}

func (c SyncStatusCommand) OrderID() string {
	return c.orderID
}
