package commands

import (
	"errors"
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand books a carrier shipment for an unshipped order.
type CreateShipmentCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(orderID string) (CreateShipmentCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return CreateShipmentCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	return CreateShipmentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) OrderID() string {
	return c.orderID
}
