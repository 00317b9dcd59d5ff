package service

import (
	"time"

	"smart_thermostat/internal/models"
)

// SetpointParams addresses one field of one comfort. An empty Comfort means
// the active comfort.
type SetpointParams struct {
	Comfort string
	Target  models.SetpointTarget
	Value   int
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "" or one of the models.Event* constants

	// Outcome selects assistant proposals by how they ended: "proposed",
	// "confirmed" or "cancelled". It narrows to the matching ACTION_* type.
	Outcome string
}

// TurnResult is the outcome of one assistant turn.
type TurnResult struct {
	Reply    string         `json:"reply"`
	Pending  *PendingAction `json:"pending,omitempty"`
	Replaced bool           `json:"replaced"`
}

// PendingAction is the staged proposal as shown to the user.
type PendingAction struct {
	Type        string    `json:"type"`
	Action      any       `json:"action"`
	Description string    `json:"description"`
	Explainer   string    `json:"explainer"`
	ProposedAt  time.Time `json:"proposed_at"`
}

// WeatherReport is what a weather refresh produced. OK is false when the
// lookup failed; Status is then the user-facing reason.
type WeatherReport struct {
	OK      bool   `json:"ok"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Place   string `json:"place,omitempty"`
	Stale   bool   `json:"stale,omitempty"`
}
