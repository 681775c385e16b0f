package commands

import (
	"errors"
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand asks the backend to start a return for a delivered order.
type RequestReturnCommand struct {
	orderID string
	reason  string

	guard guard.ConstructorGuard
}

func NewRequestReturnCommand(orderID, reason string) (RequestReturnCommand, error) {
	orderID = strings.TrimSpace(orderID)
	reason = strings.TrimSpace(reason)

	var idErr, reasonErr error
	if orderID == "" {
		idErr = errs.NewValueIsRequiredError("orderID")
	}
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(idErr, reasonErr); err != nil {
		return RequestReturnCommand{}, err
	}

	return RequestReturnCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

func (c RequestReturnCommand) OrderID() string {
	return c.orderID
}

func (c RequestReturnCommand) Reason() string {
	return c.reason
}
