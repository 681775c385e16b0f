package shipment

// Icon names the glyph category shown next to a status.
type Icon string

const (
	IconBox      Icon = "box"
	IconSpinner  Icon = "spinner"
	IconShipping Icon = "shipping-fast"
	IconTruck    Icon = "truck"
	IconCheck    Icon = "check-circle"
	IconUndo     Icon = "undo"
	IconCancel   Icon = "times-circle"
)

// Tone is the semantic color bucket of a status.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneCaution Tone = "caution"
	ToneDanger  Tone = "danger"
)

// Badge is the presentation of a status: label, glyph, progress and color.
type Badge struct {
	Status  Status
	Label   string
	Icon    Icon
	Percent int
	Tone    Tone
}

type badgeStyle struct {
	icon    Icon
	percent int
	tone    Tone
}

var badgeStyles = map[Status]badgeStyle{
	Pending:        {IconBox, 10, ToneNeutral},
	Processing:     {IconSpinner, 25, ToneNeutral},
	Shipped:        {IconShipping, 50, ToneWarning},
	OutForDelivery: {IconTruck, 75, ToneInfo},
	Delivered:      {IconCheck, 100, ToneSuccess},
	DeliveredEarly: {IconCheck, 100, ToneSuccess},
	Returning:      {IconUndo, 50, ToneCaution},
	Returned:       {IconUndo, 75, ToneCaution},
	Cancelled:      {IconCancel, 100, ToneDanger},
}

// BadgeFor maps a status to its badge. Unknown renders as Pending, matching a
// record whose status was never set.
func BadgeFor(s Status) Badge {
	if _, ok := badgeStyles[s]; !ok {
		s = Pending
	}
	style := badgeStyles[s]
	return Badge{
		Status:  s,
		Label:   s.String(),
		Icon:    style.icon,
		Percent: style.percent,
		Tone:    style.tone,
	}
}

// ProgressPercent is BadgeFor(s).Percent.
func ProgressPercent(s Status) int {
	return BadgeFor(s).Percent
}

// Step is one ordered progression step as drawn by the status dialog.
type Step struct {
	Status   Status
	Passed   bool // the current status has reached this step
	Selected bool // the proposed status would reach this step
}

// Active reports whether the step is highlighted.
func (s Step) Active() bool {
	return s.Passed || s.Selected
}

// ProgressSteps lays out the progression for a dialog where current is the
// stored status and selected is the status being proposed. Special or
// unrecognized statuses reach no step.
func ProgressSteps(current, selected Status) []Step {
	currentIdx, currentOK := current.ProgressionIndex()
	selectedIdx, selectedOK := selected.ProgressionIndex()

	progression := Progression()
	steps := make([]Step, 0, len(progression))
	for i, s := range progression {
		steps = append(steps, Step{
			Status:   s,
			Passed:   currentOK && currentIdx >= i,
			Selected: selectedOK && selectedIdx >= i,
		})
	}
	return steps
}
