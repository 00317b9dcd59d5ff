package models

import (
	"sort"
	"time"
)

// HvacMode is the system-wide operating mode.
type HvacMode string

const (
	HvacOff  HvacMode = "Off"
	HvacHeat HvacMode = "Heat"
	HvacCool HvacMode = "Cool"
	HvacAuto HvacMode = "Auto"
	HvacAux  HvacMode = "Aux"
)

// HvacModes lists the legal modes in display order.
var HvacModes = []HvacMode{HvacOff, HvacHeat, HvacCool, HvacAuto, HvacAux}

func (m HvacMode) Valid() bool {
	for _, v := range HvacModes {
		if m == v {
			return true
		}
	}
	return false
}

// FanSetting is how the fan flag is surfaced to clients and producers.
type FanSetting string

const (
	FanAuto FanSetting = "Auto"
	FanOn   FanSetting = "On"
)

var FanSettings = []FanSetting{FanAuto, FanOn}

func (f FanSetting) Valid() bool {
	return f == FanAuto || f == FanOn
}

// SetpointTarget selects the heat or cool field of a comfort preset.
type SetpointTarget string

const (
	TargetHeat SetpointTarget = "heat"
	TargetCool SetpointTarget = "cool"
)

var SetpointTargets = []SetpointTarget{TargetHeat, TargetCool}

func (t SetpointTarget) Valid() bool {
	return t == TargetHeat || t == TargetCool
}

// Setpoint bounds and the values a lazily created comfort starts with.
const (
	SetpointMinF = 45
	SetpointMaxF = 90

	DefaultNewHeatF = 66
	DefaultNewCoolF = 78
)

// WeatherNotUpdated is the weather status before any successful lookup.
const WeatherNotUpdated = "Not updated"

// Setpoint is the heat/cool pair of one comfort preset.
type Setpoint struct {
	Heat int `json:"heat"`
	Cool int `json:"cool"`
}

// Get returns the field selected by t.
func (s Setpoint) Get(t SetpointTarget) int {
	if t == TargetCool {
		return s.Cool
	}
	return s.Heat
}

// ThermostatState is the whole mutable configuration of the simulated thermostat.
type ThermostatState struct {
	IndoorTempF int    `json:"indoor_temp_f"`
	HumidityPct int    `json:"humidity_pct"`
	AirQuality  string `json:"air_quality"`

	HvacMode HvacMode `json:"hvac_mode"`
	FanOn    bool     `json:"fan_on"`

	Comfort    string              `json:"comfort"`
	Setpoints  map[string]Setpoint `json:"setpoints"`
	DialTarget SetpointTarget      `json:"dial_target"`

	Location           string   `json:"location"`
	OutdoorTempF       *float64 `json:"outdoor_temp_f"`
	OutdoorHumidityPct *float64 `json:"outdoor_humidity_pct"`
	WeatherStatus      string   `json:"weather_status"`
	GeoCandidates      []Place  `json:"geo_candidates,omitempty"`
	GeoChoice          int      `json:"geo_choice"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewThermostatState returns the state a fresh session starts with.
func NewThermostatState() *ThermostatState {
	return &ThermostatState{
		IndoorTempF: 78,
		HumidityPct: 51,
		AirQuality:  "Fair",
		HvacMode:    HvacHeat,
		FanOn:       false,
		Comfort:     "Away",
		Setpoints: map[string]Setpoint{
			"Home":    {Heat: 68, Cool: 76},
			"Away":    {Heat: 64, Cool: 82},
			"Sleep":   {Heat: 66, Cool: 78},
			"Morning": {Heat: 70, Cool: 75},
		},
		DialTarget:    TargetHeat,
		Location:      "Berkeley, California",
		WeatherStatus: WeatherNotUpdated,
		UpdatedAt:     time.Now().UTC(),
	}
}

// Fan reports the fan flag as a FanSetting.
func (s *ThermostatState) Fan() FanSetting {
	if s.FanOn {
		return FanOn
	}
	return FanAuto
}

// ActiveSetpoint returns the setpoints of the selected comfort.
func (s *ThermostatState) ActiveSetpoint() Setpoint {
	return s.Setpoints[s.Comfort]
}

// ComfortNames returns the preset names in a stable order.
func (s *ThermostatState) ComfortNames() []string {
	names := make([]string, 0, len(s.Setpoints))
	for name := range s.Setpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasComfort reports whether name is a defined preset.
func (s *ThermostatState) HasComfort(name string) bool {
	_, ok := s.Setpoints[name]
	return ok
}

// Clone returns a deep copy safe to hand out of the session lock.
func (s *ThermostatState) Clone() ThermostatState {
	out := *s
	out.Setpoints = make(map[string]Setpoint, len(s.Setpoints))
	for k, v := range s.Setpoints {
		out.Setpoints[k] = v
	}
	if s.OutdoorTempF != nil {
		v := *s.OutdoorTempF
		out.OutdoorTempF = &v
	}
	if s.OutdoorHumidityPct != nil {
		v := *s.OutdoorHumidityPct
		out.OutdoorHumidityPct = &v
	}
	if s.GeoCandidates != nil {
		out.GeoCandidates = append([]Place(nil), s.GeoCandidates...)
	}
	return out
}
