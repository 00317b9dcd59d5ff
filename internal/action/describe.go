package action

import "fmt"

// Describe renders the one-line summary shown next to a pending proposal.
// activeComfort fills in a SetSetpoint without an explicit comfort.
func Describe(a Action, activeComfort string) string {
	switch a := a.(type) {
	case SetHvacMode:
		return fmt.Sprintf("Proposed change: HVAC mode → %s", a.Mode)
	case SetFan:
		return fmt.Sprintf("Proposed change: Fan → %s", a.Fan)
	case SetComfort:
		return fmt.Sprintf("Proposed change: Comfort → %s", a.Comfort)
	case SetSetpoint:
		comfort := a.Comfort
		if comfort == "" {
			comfort = activeComfort
		}
		return fmt.Sprintf("Proposed change: %s %s setpoint → %d", comfort, a.Target, a.Value)
	case SetLocation:
		return fmt.Sprintf("Proposed change: Location → %s", a.Location)
	}
	return "Proposed change: (unknown)"
}
