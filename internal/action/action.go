// Package action defines the closed set of control changes an assistant may
// propose, and the boundary code that reads them out of free-form replies.
package action

import (
	"encoding/json"

	"smart_thermostat/internal/models"
)

// Type is the wire discriminator carried in the "type" field.
type Type string

const (
	TypeSetHvacMode Type = "set_hvac_mode"
	TypeSetFan      Type = "set_fan"
	TypeSetComfort  Type = "set_comfort"
	TypeSetSetpoint Type = "set_setpoint"
	TypeSetLocation Type = "set_location"
)

// Action is one proposed state change. The set of implementations is closed:
// SetHvacMode, SetFan, SetComfort, SetSetpoint, SetLocation and Unknown.
type Action interface {
	Kind() Type
	// Accept dispatches to the matching Visitor method and returns its status.
	Accept(v Visitor) string
	sealed()
}

// Visitor handles every Action variant. Adding a variant without extending
// every Visitor implementation fails to compile.
type Visitor interface {
	VisitSetHvacMode(a SetHvacMode) string
	VisitSetFan(a SetFan) string
	VisitSetComfort(a SetComfort) string
	VisitSetSetpoint(a SetSetpoint) string
	VisitSetLocation(a SetLocation) string
	VisitUnknown(a Unknown) string
}

// SetHvacMode switches the system mode.
type SetHvacMode struct {
	Mode models.HvacMode
}

// SetFan switches the fan between Auto and On.
type SetFan struct {
	Fan models.FanSetting
}

// SetComfort selects an existing comfort preset.
type SetComfort struct {
	Comfort string
}

// SetSetpoint writes one field of a comfort preset. An empty Comfort means
// the active comfort at the time the action is applied.
type SetSetpoint struct {
	Target  models.SetpointTarget
	Value   int
	Comfort string
}

// SetLocation changes the location used for outdoor weather.
type SetLocation struct {
	Location string
}

// Unknown is a well-formed JSON object that is not a schema-valid action.
// It is never applied; Reason holds the status to report if it is.
type Unknown struct {
	Type   Type
	Reason string
	Raw    json.RawMessage
}

func (SetHvacMode) Kind() Type { return TypeSetHvacMode }
func (SetFan) Kind() Type      { return TypeSetFan }
func (SetComfort) Kind() Type  { return TypeSetComfort }
func (SetSetpoint) Kind() Type { return TypeSetSetpoint }
func (SetLocation) Kind() Type { return TypeSetLocation }
func (a Unknown) Kind() Type   { return a.Type }

func (a SetHvacMode) Accept(v Visitor) string { return v.VisitSetHvacMode(a) }
func (a SetFan) Accept(v Visitor) string      { return v.VisitSetFan(a) }
func (a SetComfort) Accept(v Visitor) string  { return v.VisitSetComfort(a) }
func (a SetSetpoint) Accept(v Visitor) string { return v.VisitSetSetpoint(a) }
func (a SetLocation) Accept(v Visitor) string { return v.VisitSetLocation(a) }
func (a Unknown) Accept(v Visitor) string     { return v.VisitUnknown(a) }

func (SetHvacMode) sealed() {}
func (SetFan) sealed()      {}
func (SetComfort) sealed()  {}
func (SetSetpoint) sealed() {}
func (SetLocation) sealed() {}
func (Unknown) sealed()     {}

// IsApplicable reports whether a is a schema-valid variant that may be staged.
func IsApplicable(a Action) bool {
	if a == nil {
		return false
	}
	_, unknown := a.(Unknown)
	return !unknown
}

// wireAction is the producer-facing JSON shape.
type wireAction struct {
	Type     Type   `json:"type"`
	Mode     string `json:"mode,omitempty"`
	Fan      string `json:"fan,omitempty"`
	Comfort  string `json:"comfort,omitempty"`
	Target   string `json:"target,omitempty"`
	Value    *int   `json:"value,omitempty"`
	Location string `json:"location,omitempty"`
}

func (a SetHvacMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAction{Type: TypeSetHvacMode, Mode: string(a.Mode)})
}

func (a SetFan) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAction{Type: TypeSetFan, Fan: string(a.Fan)})
}

func (a SetComfort) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAction{Type: TypeSetComfort, Comfort: a.Comfort})
}

func (a SetSetpoint) MarshalJSON() ([]byte, error) {
	v := a.Value
	return json.Marshal(wireAction{Type: TypeSetSetpoint, Target: string(a.Target), Value: &v, Comfort: a.Comfort})
}

func (a SetLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAction{Type: TypeSetLocation, Location: a.Location})
}

func (a Unknown) MarshalJSON() ([]byte, error) {
	if len(a.Raw) > 0 {
		return a.Raw, nil
	}
	return json.Marshal(map[string]any{"type": a.Type})
}
