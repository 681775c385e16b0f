package shipment

import "strings"

// carrierRules are checked in order; the first rule whose fragment appears in
// the lowercased carrier text wins. Return and cancel rules come first since
// carriers report "RTO Delivered" and "Cancelled - Not Delivered".
var carrierRules = []struct {
	fragment string
	status   Status
}{
	{"cancel", Cancelled},
	{"rto delivered", Returned},
	{"returned", Returned},
	{"rto", Returning},
	{"return", Returning},
	{"undelivered", OutForDelivery},
	{"delivered early", DeliveredEarly},
	{"delivered", Delivered},
	{"out for delivery", OutForDelivery},
	{"in transit", Shipped},
	{"shipped", Shipped},
	{"picked up", Shipped},
	{"dispatched", Shipped},
	{"pickup scheduled", Processing},
	{"manifest", Processing},
	{"processing", Processing},
	{"pending", Pending},
	{"order placed", Pending},
}

// NormalizeCarrierStatus maps free-text carrier status ("In Transit",
// "OUT FOR DELIVERY", "RTO Initiated") onto a Status. It returns false when
// no rule matches.
func NormalizeCarrierStatus(raw string) (Status, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return Unknown, false
	}
	if s, err := ParseStatus(text); err == nil {
		return s, true
	}
	for _, r := range carrierRules {
		if strings.Contains(text, r.fragment) {
			return r.status, true
		}
	}
	return Unknown, false
}

// resolveReportedStatus turns a status reported by the backend into a Status.
// Exact names win, then carrier text, then Unknown.
func resolveReportedStatus(raw string) Status {
	if s, ok := NormalizeCarrierStatus(raw); ok {
		return s
	}
	return Unknown
}
