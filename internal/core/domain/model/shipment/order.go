package shipment

import (
	"errors"
	"fmt"
	"strings"

	"shipments/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrShipmentAlreadyCreated is returned when a shipment is requested for an
	// order that already has one.
	ErrShipmentAlreadyCreated = errors.New("shipment already created for order")

	// ErrActionNotAllowed is returned when an admin action does not fit the
	// order's shipment phase.
	ErrActionNotAllowed = errors.New("action is not allowed in the order's shipment phase")
)

// PaymentStatus is the payment state carried on the order record.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Payment is the payment sub-record of an order.
type Payment struct {
	Status PaymentStatus
	Amount float64
}

// IsPaid reports whether the order has been paid for.
func (p Payment) IsPaid() bool {
	return strings.EqualFold(string(p.Status), string(PaymentPaid))
}

// State is the plain data of an Order, used to restore it from storage and to
// compare two versions of the same record.
type State struct {
	ID         string
	ShipmentID string
	AWBNumber  string
	Courier    string
	InvoiceURL string
	Status     Status
	Payment    Payment
	Tracking   *Tracking
}

// Order is the local record of an order's shipment. It is the aggregate root
// for shipment status changes and for reconciliation with the carrier.
//
// Order follows these invariants:
//   - Must have a non-empty identifier
//   - Status defaults to Pending when never set
//   - Status changes go through ValidateTransition
//   - Remote merges never clear a field the remote side did not report
//
// Records are never deleted; each change supersedes the previous state.
type Order struct {
	id         string
	shipmentID string
	awbNumber  string
	courier    string
	invoiceURL string
	status     Status
	payment    Payment
	tracking   *Tracking

	isConstructed bool
}

// NewOrder creates an unshipped order in Pending status.
//
// Example:
//
//	o, err := NewOrder("66f1c0a2e4b0")
//	if err != nil {
//	    // empty id
//	}
//	o.Phase() // PhaseUnshipped
func NewOrder(id string) (*Order, error) {
	return RestoreOrder(State{
		ID:      id,
		Status:  Pending,
		Payment: Payment{Status: PaymentPending},
	})
}

// RestoreOrder rebuilds an order from stored state. An Unknown status is kept
// as is; it has no position in the progression and is handled by the
// transition policy.
func RestoreOrder(s State) (*Order, error) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	o := &Order{
		id:            id,
		shipmentID:    strings.TrimSpace(s.ShipmentID),
		awbNumber:     strings.TrimSpace(s.AWBNumber),
		courier:       s.Courier,
		invoiceURL:    s.InvoiceURL,
		status:        s.Status,
		payment:       s.Payment,
		isConstructed: true,
	}
	if s.Tracking != nil {
		t := s.Tracking.Clone()
		o.tracking = &t
	}
	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() string         { return o.id }
func (o *Order) ShipmentID() string { return o.shipmentID }
func (o *Order) AWBNumber() string  { return o.awbNumber }
func (o *Order) Courier() string    { return o.courier }
func (o *Order) InvoiceURL() string { return o.invoiceURL }
func (o *Order) Status() Status     { return o.status }
func (o *Order) Payment() Payment   { return o.payment }

// Tracking returns a copy of the last known carrier tracking, or nil.
func (o *Order) Tracking() *Tracking {
	if o.tracking == nil {
		return nil
	}
	t := o.tracking.Clone()
	return &t
}

// State returns a deep copy of the order's data.
func (o *Order) State() State {
	return State{
		ID:         o.id,
		ShipmentID: o.shipmentID,
		AWBNumber:  o.awbNumber,
		Courier:    o.courier,
		InvoiceURL: o.invoiceURL,
		Status:     o.status,
		Payment:    o.payment,
		Tracking:   o.Tracking(),
	}
}

// Equal compares the full state of two orders.
func (o *Order) Equal(other *Order) bool {
	if other == nil {
		return false
	}
	return cmp.Equal(o.State(), other.State())
}

// Phase derives the shipment phase from the shipment linkage.
func (o *Order) Phase() Phase {
	switch {
	case o.awbNumber != "":
		return PhaseDispatched
	case o.shipmentID != "":
		return PhaseAwaitingAWB
	default:
		return PhaseUnshipped
	}
}

// AllowedActions lists the admin actions valid in the current phase.
func (o *Order) AllowedActions() []Action {
	return o.Phase().AllowedActions()
}

// CanCreateShipment returns nil only for unshipped orders.
func (o *Order) CanCreateShipment() error {
	if o.Phase() != PhaseUnshipped {
		return errs.NewValueIsInvalidErrorWithCause(
			"order "+o.id,
			fmt.Errorf("%w: phase is %s", ErrShipmentAlreadyCreated, o.Phase()),
		)
	}
	return nil
}

// EnsureAllowed checks action a against the order's shipment phase.
//
// Returns:
//   - nil if the phase allows a
//   - *ActionError otherwise, matching both ErrActionNotAllowed and
//     errs.ErrValueIsInvalid
//
// Example:
//
//	o, _ := NewOrder("66f1c0a2e4b0")
//	err := o.EnsureAllowed(ActionUpdateStatus)
//	errors.Is(err, ErrActionNotAllowed) // true: an unshipped order only allows create_shipment
func (o *Order) EnsureAllowed(a Action) error {
	if o.Phase().Allows(a) {
		return nil
	}
	return &ActionError{OrderID: o.id, Action: a, Phase: o.Phase()}
}

// ActionError is an admin action rejected by the order's shipment phase.
type ActionError struct {
	OrderID string
	Action  Action
	Phase   Phase
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s is not allowed for order %s while it is %s", e.Action, e.OrderID, e.Phase)
}

func (e *ActionError) Unwrap() []error {
	return []error{ErrActionNotAllowed, errs.ErrValueIsInvalid}
}

// UserMessage is the text shown next to the disabled action.
func (e *ActionError) UserMessage() string {
	switch e.Phase {
	case PhaseUnshipped:
		return "Create a shipment for this order first."
	case PhaseAwaitingAWB:
		return "The carrier has not assigned an AWB number to this order yet."
	default:
		return fmt.Sprintf("This action is not available for order %s.", e.OrderID)
	}
}

// ChangeStatus moves the order to proposed if the transition is allowed.
// Returns *TransitionError on a rejected ordering.
func (o *Order) ChangeStatus(proposed Status, policy Policy) error {
	if err := ValidateTransition(o.status, proposed, policy); err != nil {
		return err
	}
	o.status = proposed
	return nil
}

// OrderSnapshot is an order as reported by the tracking backend. Empty fields
// mean "not reported".
type OrderSnapshot struct {
	ID         string
	ShipmentID string
	AWBNumber  string
	Courier    string
	InvoiceURL string
	Status     string
	Payment    *Payment
}

// ApplySnapshot merges reported fields into the order without clearing
// anything the snapshot left empty. The reported status is taken as carrier
// truth and bypasses transition rules. It reports whether the state changed.
func (o *Order) ApplySnapshot(s OrderSnapshot) bool {
	before := o.State()

	if v := strings.TrimSpace(s.ShipmentID); v != "" {
		o.shipmentID = v
	}
	if v := strings.TrimSpace(s.AWBNumber); v != "" {
		o.awbNumber = v
	}
	if s.Courier != "" {
		o.courier = s.Courier
	}
	if s.InvoiceURL != "" {
		o.invoiceURL = s.InvoiceURL
	}
	if strings.TrimSpace(s.Status) != "" {
		o.status = resolveReportedStatus(s.Status)
	}
	if s.Payment != nil {
		if s.Payment.Status != "" {
			o.payment.Status = s.Payment.Status
		}
		if s.Payment.Amount != 0 {
			o.payment.Amount = s.Payment.Amount
		}
	}

	return !cmp.Equal(before, o.State())
}

// ApplyTracking merges reported tracking into the order. It reports whether
// the state changed.
func (o *Order) ApplyTracking(t Tracking) (bool, error) {
	if o.tracking == nil && cmp.Equal(t, Tracking{}) {
		return false, nil
	}
	before := o.State()

	base := Tracking{}
	if o.tracking != nil {
		base = *o.tracking
	}
	merged, err := MergeTracking(base, t)
	if err != nil {
		return false, err
	}
	o.tracking = &merged
	if o.awbNumber == "" && merged.AWB != "" {
		o.awbNumber = merged.AWB
	}
	if o.courier == "" && merged.CourierName != "" {
		o.courier = merged.CourierName
	}

	return !cmp.Equal(before, o.State()), nil
}

// DisplayStatus prefers the carrier's live status over the stored one when it
// can be recognized.
func (o *Order) DisplayStatus() Status {
	if o.tracking != nil {
		if s := o.tracking.Status(); s != Unknown {
			return s
		}
	}
	if o.status == Unknown {
		return Pending
	}
	return o.status
}

// EstimatedDelivery delegates to the tracking data, if any.
func (o *Order) EstimatedDelivery() (DeliveryWindow, bool) {
	if o.tracking == nil {
		return DeliveryWindow{}, false
	}
	return o.tracking.EstimatedDelivery()
}

// ChangedFields names the fields that differ between two states of the same
// order, in a stable order.
func ChangedFields(before, after State) []string {
	fields := make([]string, 0, 8)
	if before.ShipmentID != after.ShipmentID {
		fields = append(fields, "shipmentId")
	}
	if before.AWBNumber != after.AWBNumber {
		fields = append(fields, "awbNumber")
	}
	if before.Courier != after.Courier {
		fields = append(fields, "courier")
	}
	if before.InvoiceURL != after.InvoiceURL {
		fields = append(fields, "invoiceUrl")
	}
	if before.Status != after.Status {
		fields = append(fields, "shipmentStatus")
	}
	if before.Payment != after.Payment {
		fields = append(fields, "payment")
	}
	if !cmp.Equal(before.Tracking, after.Tracking) {
		fields = append(fields, "tracking")
	}
	return fields
}
