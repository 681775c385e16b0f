package commands

import (
	"errors"
	"strings"

	"shipments/internal/core/domain/model/shipment"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrUpdateTrackingInfoCommandIsNotConstructed = errors.New(
	"UpdateTrackingInfoCommand must be created via NewUpdateTrackingInfoCommand constructor",
)

// UpdateTrackingInfoCommand sets shipment linkage fields by hand, typically the
// AWB while an order is awaiting one.
type UpdateTrackingInfoCommand struct {
	orderID string
	update  ports.TrackingUpdate

	guard guard.ConstructorGuard
}

// NewUpdateTrackingInfoCommand requires an order id and at least one field.
func NewUpdateTrackingInfoCommand(orderID string, update ports.TrackingUpdate) (UpdateTrackingInfoCommand, error) {
	orderID = strings.TrimSpace(orderID)
	update.AWBNumber = strings.TrimSpace(update.AWBNumber)
	update.ShipmentID = strings.TrimSpace(update.ShipmentID)
	update.Courier = strings.TrimSpace(update.Courier)

	var idErr, fieldsErr, statusErr error
	if orderID == "" {
		idErr = errs.NewValueIsRequiredError("orderID")
	}
	if update.IsEmpty() {
		fieldsErr = errs.NewValueIsRequiredError("tracking fields")
	}
	if update.Status != shipment.Unknown {
		statusErr = update.Status.Validate()
	}
	if err := errors.Join(idErr, fieldsErr, statusErr); err != nil {
		return UpdateTrackingInfoCommand{}, err
	}

	return UpdateTrackingInfoCommand{
		orderID: orderID,
		update:  update,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTrackingInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackingInfoCommandIsNotConstructed)
}

func (c UpdateTrackingInfoCommand) OrderID() string {
	return c.orderID
}

func (c UpdateTrackingInfoCommand) Update() ports.TrackingUpdate {
	return c.update
}
