// Package thermostat is the single choke point for state changes. Manual
// edits and confirmed assistant actions both go through these functions, so
// the setpoint bounds and enum invariants hold whatever the input source.
package thermostat

import (
	"errors"
	"strings"
	"time"

	"smart_thermostat/internal/models"
)

var (
	ErrInvalidMode     = errors.New("invalid HVAC mode")
	ErrInvalidFan      = errors.New("invalid fan value")
	ErrInvalidComfort  = errors.New("invalid comfort")
	ErrInvalidTarget   = errors.New("invalid setpoint target")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidChoice   = errors.New("invalid location candidate")
)

// Clamp bounds v to [SetpointMinF, SetpointMaxF].
func Clamp(v int) int {
	return max(models.SetpointMinF, min(models.SetpointMaxF, v))
}

// SetSetpoint clamps value, creates the comfort with default setpoints if it
// does not exist, and stores the value. It returns what was stored. Out of
// range values are corrected, never rejected.
func SetSetpoint(st *models.ThermostatState, comfort string, target models.SetpointTarget, value int) (int, error) {
	if !target.Valid() {
		return 0, ErrInvalidTarget
	}
	if st.Setpoints == nil {
		st.Setpoints = make(map[string]models.Setpoint)
	}
	sp, ok := st.Setpoints[comfort]
	if !ok {
		sp = models.Setpoint{Heat: models.DefaultNewHeatF, Cool: models.DefaultNewCoolF}
	}
	v := Clamp(value)
	if target == models.TargetCool {
		sp.Cool = v
	} else {
		sp.Heat = v
	}
	st.Setpoints[comfort] = sp
	touch(st)
	return v, nil
}

// SetComfortSetpoints writes both fields of a comfort, clamping each.
func SetComfortSetpoints(st *models.ThermostatState, comfort string, heat, cool int) models.Setpoint {
	h, _ := SetSetpoint(st, comfort, models.TargetHeat, heat)
	c, _ := SetSetpoint(st, comfort, models.TargetCool, cool)
	return models.Setpoint{Heat: h, Cool: c}
}

func SetHvacMode(st *models.ThermostatState, mode models.HvacMode) error {
	if !mode.Valid() {
		return ErrInvalidMode
	}
	st.HvacMode = mode
	touch(st)
	return nil
}

func SetFan(st *models.ThermostatState, fan models.FanSetting) error {
	if !fan.Valid() {
		return ErrInvalidFan
	}
	st.FanOn = fan == models.FanOn
	touch(st)
	return nil
}

// SetComfort selects an existing preset. Unlike SetSetpoint it never creates
// one: selecting an undefined comfort is an error.
func SetComfort(st *models.ThermostatState, name string) error {
	if !st.HasComfort(name) {
		return ErrInvalidComfort
	}
	st.Comfort = name
	touch(st)
	return nil
}

// SetLocation stores the trimmed location. Weather readings and cached
// geocoding candidates belong to the old location and are reset.
func SetLocation(st *models.ThermostatState, text string) error {
	loc := strings.TrimSpace(text)
	if loc == "" {
		return ErrInvalidLocation
	}
	st.Location = loc
	st.OutdoorTempF = nil
	st.OutdoorHumidityPct = nil
	st.WeatherStatus = models.WeatherNotUpdated
	st.GeoCandidates = nil
	st.GeoChoice = 0
	touch(st)
	return nil
}

// SetDialTarget chooses which field of the active comfort the dial edits.
func SetDialTarget(st *models.ThermostatState, target models.SetpointTarget) error {
	if !target.Valid() {
		return ErrInvalidTarget
	}
	st.DialTarget = target
	touch(st)
	return nil
}

// StepDial moves the dial-selected setpoint of the active comfort by delta.
func StepDial(st *models.ThermostatState, delta int) int {
	current := st.ActiveSetpoint().Get(st.DialTarget)
	if !st.HasComfort(st.Comfort) {
		current = defaultFor(st.DialTarget)
	}
	v, err := SetSetpoint(st, st.Comfort, st.DialTarget, current+delta)
	if err != nil {
		return current
	}
	return v
}

// SetGeoCandidates caches geocoding results and keeps the choice in range.
func SetGeoCandidates(st *models.ThermostatState, places []models.Place) {
	st.GeoCandidates = append([]models.Place(nil), places...)
	if st.GeoChoice >= len(places) || st.GeoChoice < 0 {
		st.GeoChoice = 0
	}
	touch(st)
}

// SelectGeoCandidate picks which cached candidate the next weather update uses.
func SelectGeoCandidate(st *models.ThermostatState, index int) (models.Place, error) {
	if index < 0 || index >= len(st.GeoCandidates) {
		return models.Place{}, ErrInvalidChoice
	}
	st.GeoChoice = index
	touch(st)
	return st.GeoCandidates[index], nil
}

// RecordWeather stores a successful outdoor reading.
func RecordWeather(st *models.ThermostatState, tempF float64, humidityPct *float64, status string) {
	st.OutdoorTempF = &tempF
	if humidityPct != nil {
		h := *humidityPct
		st.OutdoorHumidityPct = &h
	} else {
		st.OutdoorHumidityPct = nil
	}
	st.WeatherStatus = status
	touch(st)
}

// RecordWeatherFailure clears outdoor readings and stores the failure status.
func RecordWeatherFailure(st *models.ThermostatState, status string) {
	st.OutdoorTempF = nil
	st.OutdoorHumidityPct = nil
	st.WeatherStatus = status
	touch(st)
}

func defaultFor(t models.SetpointTarget) int {
	if t == models.TargetCool {
		return models.DefaultNewCoolF
	}
	return models.DefaultNewHeatF
}

func touch(st *models.ThermostatState) {
	st.UpdatedAt = time.Now().UTC()
}
