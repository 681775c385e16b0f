package commands

import (
	"errors"
	"strings"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand is an admin's manual change of an order's shipment status.
type UpdateStatusCommand struct {
	orderID string
	status  shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand validates the order id and the target status.
// The transition itself is checked by the handler against the stored status.
func NewUpdateStatusCommand(orderID string, status shipment.Status) (UpdateStatusCommand, error) {
	c := UpdateStatusCommand{guard: guard.NewConstructorGuard()}

	orderID = strings.TrimSpace(orderID)
	var idErr error
	if orderID == "" {
		idErr = errs.NewValueIsRequiredError("orderID")
	}
	if err := errors.Join(idErr, status.Validate()); err != nil {
		return UpdateStatusCommand{}, err
	}

	c.orderID = orderID
	c.status = status
	return c, nil
}

func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

func (c UpdateStatusCommand) OrderID() string {
	return c.orderID
}

func (c UpdateStatusCommand) Status() shipment.Status {
	return c.status
}
