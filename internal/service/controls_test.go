package service

import (
	"context"
	"errors"
	"testing"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/thermostat"
)

func newTestControls(t *testing.T) (*ControlService, *Session, *fakeEventRepo) {
	t.Helper()
	session := newTestSession(t)
	events := &fakeEventRepo{}
	return NewControlService(session, newRecorder(events, nil)), session, events
}

func TestControlService_SetHvacMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mode    models.HvacMode
		wantErr error
		want    models.HvacMode
		events  int
	}{
		{name: "valid mode", mode: models.HvacCool, want: models.HvacCool, events: 1},
		{name: "aux mode", mode: models.HvacAux, want: models.HvacAux, events: 1},
		{name: "invalid mode keeps state", mode: "Turbo", wantErr: thermostat.ErrInvalidMode, want: models.HvacHeat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, session, events := newTestControls(t)
			err := svc.SetHvacMode(context.Background(), tc.mode)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v; want %v", err, tc.wantErr)
			}
			if got := session.Snapshot().HvacMode; got != tc.want {
				t.Fatalf("mode = %s; want %s", got, tc.want)
			}
			if got := len(events.types()); got != tc.events {
				t.Fatalf("events = %d; want %d", got, tc.events)
			}
		})
	}
}

func TestControlService_SetSetpoint(t *testing.T) {
	t.Parallel()

	svc, session, events := newTestControls(t)
	ctx := context.Background()

	got, err := svc.SetSetpoint(ctx, SetpointParams{Target: models.TargetHeat, Value: 120})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != models.SetpointMaxF {
		t.Fatalf("stored = %d; want clamp to %d", got, models.SetpointMaxF)
	}
	if sp := session.Snapshot().Setpoints["Away"]; sp.Heat != models.SetpointMaxF || sp.Cool != 82 {
		t.Fatalf("Away = %+v", sp)
	}

	got, err = svc.SetSetpoint(ctx, SetpointParams{Comfort: "NewPreset", Target: models.TargetHeat, Value: 70})
	if err != nil || got != 70 {
		t.Fatalf("NewPreset = %d, %v", got, err)
	}
	if sp := session.Snapshot().Setpoints["NewPreset"]; sp != (models.Setpoint{Heat: 70, Cool: 78}) {
		t.Fatalf("NewPreset = %+v; want {70 78}", sp)
	}

	if _, err := svc.SetSetpoint(ctx, SetpointParams{Target: "warm", Value: 70}); !errors.Is(err, thermostat.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget; got %v", err)
	}
	if n := len(events.types()); n != 2 {
		t.Fatalf("events = %d; want 2", n)
	}
}

func TestControlService_SetComfort(t *testing.T) {
	t.Parallel()

	svc, session, _ := newTestControls(t)
	ctx := context.Background()

	if err := svc.SetComfort(ctx, "Home"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.SetComfort(ctx, "Vacation"); !errors.Is(err, thermostat.ErrInvalidComfort) {
		t.Fatalf("expected ErrInvalidComfort; got %v", err)
	}
	st := session.Snapshot()
	if st.Comfort != "Home" {
		t.Fatalf("comfort = %s", st.Comfort)
	}
	if st.HasComfort("Vacation") {
		t.Fatalf("selecting an unknown comfort must not create it")
	}
}

func TestControlService_DialAndComfortSetpoints(t *testing.T) {
	t.Parallel()

	svc, session, _ := newTestControls(t)
	ctx := context.Background()

	if err := svc.SetDialTarget(ctx, models.TargetCool); err != nil {
		t.Fatalf("SetDialTarget: %v", err)
	}
	got, _ := svc.StepDial(ctx, 10)
	if got != models.SetpointMaxF {
		t.Fatalf("StepDial = %d", got)
	}
	if sp := session.Snapshot().Setpoints["Away"]; sp.Cool != 90 {
		t.Fatalf("Away cool = %d; want 90", sp.Cool)
	}

	sp, err := svc.SetComfortSetpoints(ctx, "Sleep", 10, 100)
	if err != nil {
		t.Fatalf("SetComfortSetpoints: %v", err)
	}
	if sp != (models.Setpoint{Heat: models.SetpointMinF, Cool: models.SetpointMaxF}) {
		t.Fatalf("Sleep = %+v", sp)
	}
	if _, err := svc.SetComfortSetpoints(ctx, "", 60, 70); !errors.Is(err, thermostat.ErrInvalidComfort) {
		t.Fatalf("expected ErrInvalidComfort for empty name; got %v", err)
	}
}

func TestControlService_SetLocationResetsWeather(t *testing.T) {
	t.Parallel()

	svc, session, events := newTestControls(t)
	_ = session.update(func(st *models.ThermostatState) error {
		thermostat.RecordWeather(st, 61, ptr(70.0), "Updated for Berkeley")
		thermostat.SetGeoCandidates(st, []models.Place{{Name: "Berkeley"}, {Name: "Berkeley Heights"}})
		st.GeoChoice = 1
		return nil
	})

	if err := svc.SetLocation(context.Background(), "  Oakland, CA "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := session.Snapshot()
	if st.Location != "Oakland, CA" {
		t.Errorf("location = %q", st.Location)
	}
	if st.OutdoorTempF != nil || st.OutdoorHumidityPct != nil {
		t.Errorf("outdoor readings not cleared")
	}
	if st.WeatherStatus != models.WeatherNotUpdated || st.GeoCandidates != nil || st.GeoChoice != 0 {
		t.Errorf("weather state not reset: %q %v %d", st.WeatherStatus, st.GeoCandidates, st.GeoChoice)
	}
	if err := svc.SetLocation(context.Background(), "   "); !errors.Is(err, thermostat.ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation; got %v", err)
	}
	if types := events.types(); len(types) != 1 || types[0] != models.EventLocationChange {
		t.Fatalf("events = %v", types)
	}
}

func TestControlService_EventAppendFailureKeepsChange(t *testing.T) {
	t.Parallel()

	session := newTestSession(t)
	svc := NewControlService(session, newRecorder(&fakeEventRepo{appendErr: errors.New("disk full")}, nil))
	if err := svc.SetFan(context.Background(), models.FanOn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.Snapshot().FanOn {
		t.Fatalf("fan change lost")
	}
}
