package service

import (
	"context"
	"time"

	"smart_thermostat/internal/action"
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
	"smart_thermostat/internal/weather"
)

// Controls exposes manual edits. They act immediately and never touch the
// proposal slot.
type Controls interface {
	SetHvacMode(ctx context.Context, mode models.HvacMode) error
	SetFan(ctx context.Context, fan models.FanSetting) error
	SetComfort(ctx context.Context, name string) error
	SetSetpoint(ctx context.Context, p SetpointParams) (int, error)
	SetComfortSetpoints(ctx context.Context, name string, heat, cool int) (models.Setpoint, error)
	SetDialTarget(ctx context.Context, target models.SetpointTarget) error
	StepDial(ctx context.Context, delta int) (int, error)
	SetLocation(ctx context.Context, text string) error
}

// Monitoring exposes read-only state.
type Monitoring interface {
	GetState(ctx context.Context) (models.ThermostatState, error)
}

// Assistant runs conversation turns and owns the confirm/cancel gate.
type Assistant interface {
	Ask(ctx context.Context, text string) (TurnResult, error)
	Confirm(ctx context.Context) (string, error)
	Cancel(ctx context.Context) (string, error)
	Pending(ctx context.Context) (PendingAction, bool)
	History(ctx context.Context) ([]models.ChatMessage, error)
	LastReply(ctx context.Context) string
}

// Weather refreshes outdoor conditions for the configured location.
type Weather interface {
	Update(ctx context.Context) WeatherReport
	SelectCandidate(ctx context.Context, index int) (models.Place, error)
	Detect(ctx context.Context, lat, lon float64) (WeatherReport, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ThermostatEvent, error)
}

// Simulator runs the background loop that moves the indoor temperature.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// TurnRequester produces one assistant reply and at most one action.
type TurnRequester interface {
	RequestTurn(ctx context.Context, st *models.ThermostatState, userText string) (string, action.Action)
}

// Deps are the external collaborators that do not live in the repository layer.
type Deps struct {
	Turns   TurnRequester
	Weather weather.Provider
	Log     *logger.Logger
}

// Service aggregates all sub-services over one Session.
type Service struct {
	Controls
	Monitoring
	Assistant
	Weather
	EventLog
	Simulator
}

func NewService(repos *repository.Repository, session *Session, deps Deps) *Service {
	rec := newRecorder(repos.EventRepo, deps.Log)
	return &Service{
		Controls:   NewControlService(session, rec),
		Monitoring: NewMonitoringService(session),
		Assistant:  NewAssistantService(session, deps.Turns, repos.HistoryRepo, rec),
		Weather:    NewWeatherService(session, deps.Weather, rec),
		EventLog:   NewEventLogService(repos.EventRepo),
		Simulator:  NewSimulatorService(session, rec),
	}
}
