package handlers

import (
	"context"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockControls struct {
	err      error
	setpoint int
	sp       models.Setpoint

	lastMode     models.HvacMode
	lastFan      models.FanSetting
	lastComfort  string
	lastSetpoint service.SetpointParams
	lastDial     models.SetpointTarget
	lastDelta    int
	lastLocation string
	lastHeat     int
	lastCool     int
	calls        int
}

func (m *mockControls) SetHvacMode(_ context.Context, mode models.HvacMode) error {
	m.calls++
	m.lastMode = mode
	return m.err
}
func (m *mockControls) SetFan(_ context.Context, fan models.FanSetting) error {
	m.calls++
	m.lastFan = fan
	return m.err
}
func (m *mockControls) SetComfort(_ context.Context, name string) error {
	m.calls++
	m.lastComfort = name
	return m.err
}
func (m *mockControls) SetSetpoint(_ context.Context, p service.SetpointParams) (int, error) {
	m.calls++
	m.lastSetpoint = p
	return m.setpoint, m.err
}
func (m *mockControls) SetComfortSetpoints(_ context.Context, name string, heat, cool int) (models.Setpoint, error) {
	m.calls++
	m.lastComfort, m.lastHeat, m.lastCool = name, heat, cool
	return m.sp, m.err
}
func (m *mockControls) SetDialTarget(_ context.Context, target models.SetpointTarget) error {
	m.calls++
	m.lastDial = target
	return m.err
}
func (m *mockControls) StepDial(_ context.Context, delta int) (int, error) {
	m.calls++
	m.lastDelta = delta
	return m.setpoint, m.err
}
func (m *mockControls) SetLocation(_ context.Context, text string) error {
	m.calls++
	m.lastLocation = text
	return m.err
}

type mockMonitoring struct {
	state models.ThermostatState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.ThermostatState, error) {
	return m.state, m.err
}

type mockAssistant struct {
	turn       service.TurnResult
	askErr     error
	reply      string
	gateErr    error
	pending    service.PendingAction
	hasPending bool
	history    []models.ChatMessage
	historyErr error
	lastReply  string

	lastMessage  string
	confirmCalls int
	cancelCalls  int
}

func (m *mockAssistant) Ask(_ context.Context, text string) (service.TurnResult, error) {
	m.lastMessage = text
	return m.turn, m.askErr
}
func (m *mockAssistant) Confirm(context.Context) (string, error) {
	m.confirmCalls++
	return m.reply, m.gateErr
}
func (m *mockAssistant) Cancel(context.Context) (string, error) {
	m.cancelCalls++
	return m.reply, m.gateErr
}
func (m *mockAssistant) Pending(context.Context) (service.PendingAction, bool) {
	return m.pending, m.hasPending
}
func (m *mockAssistant) History(context.Context) ([]models.ChatMessage, error) {
	return m.history, m.historyErr
}
func (m *mockAssistant) LastReply(context.Context) string {
	return m.lastReply
}

type mockWeather struct {
	report    service.WeatherReport
	place     models.Place
	err       error
	lastIndex int
	lastLat   float64
	lastLon   float64
}

func (m *mockWeather) Update(context.Context) service.WeatherReport {
	return m.report
}
func (m *mockWeather) SelectCandidate(_ context.Context, index int) (models.Place, error) {
	m.lastIndex = index
	return m.place, m.err
}
func (m *mockWeather) Detect(_ context.Context, lat, lon float64) (service.WeatherReport, error) {
	m.lastLat, m.lastLon = lat, lon
	return m.report, m.err
}

type mockEventLog struct {
	resp        []models.ThermostatEvent
	err         error
	lastFrom    time.Time
	lastTo      time.Time
	lastType    string
	lastOutcome string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ThermostatEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	m.lastOutcome = f.Outcome
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
