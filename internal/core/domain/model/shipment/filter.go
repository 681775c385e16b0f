package shipment

import (
	"fmt"
	"strings"

	"shipments/internal/pkg/errs"
)

// View narrows the admin shipment list.
type View string

const (
	ViewAll       View = "all"
	ViewShipped   View = "shipped"
	ViewUnshipped View = "unshipped"
	ViewPaid      View = "paid"
)

// ParseView accepts the view names above; empty means ViewAll.
func ParseView(name string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	switch v {
	case "":
		return ViewAll, nil
	case ViewAll, ViewShipped, ViewUnshipped, ViewPaid:
		return v, nil
	default:
		return ViewAll, errs.NewValueIsInvalidErrorWithCause(
			"view",
			fmt.Errorf("%q is not one of all, shipped, unshipped, paid", name),
		)
	}
}

// ListFilter selects orders for the admin list. Search matches the order id
// or AWB as a case-insensitive substring.
type ListFilter struct {
	Search string
	View   View
}

// Matches reports whether o passes the filter.
func (f ListFilter) Matches(o *Order) bool {
	switch f.View {
	case ViewShipped:
		if o.awbNumber == "" {
			return false
		}
	case ViewUnshipped:
		if o.awbNumber != "" {
			return false
		}
	case ViewPaid:
		if !o.payment.IsPaid() {
			return false
		}
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.id), term) ||
		strings.Contains(strings.ToLower(o.awbNumber), term)
}
