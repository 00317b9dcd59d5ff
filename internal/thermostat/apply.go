package thermostat

import (
	"fmt"

	"smart_thermostat/internal/action"
	"smart_thermostat/internal/models"
)

// Status strings returned by Apply on failure.
const (
	StatusInvalidMode     = "Invalid HVAC mode"
	StatusInvalidFan      = "Invalid fan value"
	StatusInvalidComfort  = "Invalid comfort"
	StatusInvalidTarget   = "Invalid setpoint target"
	StatusInvalidLocation = "Invalid location"
	StatusUnknownAction   = "Unknown action type"
)

// Apply commits a to st and returns a human-readable status. It never panics
// on bad input; failures leave st unchanged and are reported in the status.
func Apply(st *models.ThermostatState, a action.Action) string {
	if a == nil {
		return StatusUnknownAction
	}
	return a.Accept(applier{st: st})
}

// applier must implement every action.Visitor method.
type applier struct {
	st *models.ThermostatState
}

var _ action.Visitor = applier{}

func (p applier) VisitSetHvacMode(a action.SetHvacMode) string {
	if err := SetHvacMode(p.st, a.Mode); err != nil {
		return StatusInvalidMode
	}
	return fmt.Sprintf("Applied: HVAC mode → %s", a.Mode)
}

func (p applier) VisitSetFan(a action.SetFan) string {
	if err := SetFan(p.st, a.Fan); err != nil {
		return StatusInvalidFan
	}
	return fmt.Sprintf("Applied: Fan → %s", a.Fan)
}

func (p applier) VisitSetComfort(a action.SetComfort) string {
	if err := SetComfort(p.st, a.Comfort); err != nil {
		return StatusInvalidComfort
	}
	return fmt.Sprintf("Applied: Comfort → %s", a.Comfort)
}

func (p applier) VisitSetSetpoint(a action.SetSetpoint) string {
	comfort := a.Comfort
	if comfort == "" {
		comfort = p.st.Comfort
	}
	v, err := SetSetpoint(p.st, comfort, a.Target, a.Value)
	if err != nil {
		return StatusInvalidTarget
	}
	return fmt.Sprintf("Applied: %s %s setpoint → %d", comfort, a.Target, v)
}

func (p applier) VisitSetLocation(a action.SetLocation) string {
	if err := SetLocation(p.st, a.Location); err != nil {
		return StatusInvalidLocation
	}
	return fmt.Sprintf("Applied: Location → %s", a.Location)
}

func (p applier) VisitUnknown(a action.Unknown) string {
	if a.Reason != "" {
		return a.Reason
	}
	return StatusUnknownAction
}
