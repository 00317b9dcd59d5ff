package models

import "time"

// Event types written to the thermostat event log.
const (
	EventModeChange      = "MODE_CHANGE"
	EventFanChange       = "FAN_CHANGE"
	EventComfortChange   = "COMFORT_CHANGE"
	EventSetpointChange  = "SETPOINT_CHANGE"
	EventLocationChange  = "LOCATION_CHANGE"
	EventWeatherUpdate   = "WEATHER_UPDATE"
	EventActionProposed  = "ACTION_PROPOSED"
	EventActionConfirmed = "ACTION_CONFIRMED"
	EventActionCancelled = "ACTION_CANCELLED"
	EventIndoorDrift     = "INDOOR_DRIFT"
	EventError           = "ERROR"
)

// EventTypes lists every type the log may contain.
var EventTypes = []string{
	EventModeChange, EventFanChange, EventComfortChange, EventSetpointChange,
	EventLocationChange, EventWeatherUpdate, EventActionProposed,
	EventActionConfirmed, EventActionCancelled, EventIndoorDrift, EventError,
}

// IsEventType reports whether s is one of EventTypes.
func IsEventType(s string) bool {
	for _, t := range EventTypes {
		if t == s {
			return true
		}
	}
	return false
}

// ThermostatEvent is a single log entry.
type ThermostatEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // one of the Event* constants
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
