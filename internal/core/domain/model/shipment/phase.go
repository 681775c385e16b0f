package shipment

// Phase is where an order stands with the carrier, derived from its shipment linkage.
type Phase int

const (
	// PhaseUnshipped has neither shipment id nor AWB.
	PhaseUnshipped Phase = iota
	// PhaseAwaitingAWB has a shipment id; the carrier has not issued an AWB yet.
	PhaseAwaitingAWB
	// PhaseDispatched has an AWB.
	PhaseDispatched
)

func (p Phase) String() string {
	switch p {
	case PhaseUnshipped:
		return "unshipped"
	case PhaseAwaitingAWB:
		return "awaiting_awb"
	case PhaseDispatched:
		return "dispatched"
	default:
		return "unknown"
	}
}

// Action is an admin operation on an order's shipment.
type Action string

const (
	ActionCreateShipment Action = "create_shipment"
	ActionUpdateTracking Action = "update_tracking"
	ActionSyncStatus     Action = "sync_status"
	ActionUpdateStatus   Action = "update_status"
	ActionViewTracking   Action = "view_tracking"
	ActionRequestReturn  Action = "request_return"
)

// AllowedActions lists what an admin may do in phase p.
func (p Phase) AllowedActions() []Action {
	switch p {
	case PhaseUnshipped:
		return []Action{ActionCreateShipment}
	case PhaseAwaitingAWB:
		return []Action{ActionUpdateTracking, ActionSyncStatus}
	case PhaseDispatched:
		return []Action{
			ActionSyncStatus, ActionUpdateStatus, ActionViewTracking,
			ActionUpdateTracking, ActionRequestReturn,
		}
	default:
		return nil
	}
}

// Allows reports whether a is allowed in phase p.
func (p Phase) Allows(a Action) bool {
	for _, allowed := range p.AllowedActions() {
		if allowed == a {
			return true
		}
	}
	return false
}
