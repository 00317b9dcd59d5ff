package service

import (
	"context"
	"fmt"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/thermostat"
)

// ControlService applies manual edits through the thermostat package.
type ControlService struct {
	session *Session
	events  *recorder
}

func NewControlService(session *Session, events *recorder) *ControlService {
	return &ControlService{session: session, events: events}
}

func (s *ControlService) SetHvacMode(ctx context.Context, mode models.HvacMode) error {
	var from models.HvacMode
	err := s.session.update(func(st *models.ThermostatState) error {
		from = st.HvacMode
		return thermostat.SetHvacMode(st, mode)
	})
	if err != nil {
		return err
	}
	s.events.record(ctx, models.EventModeChange, fmt.Sprintf("HVAC mode %s → %s", from, mode),
		map[string]any{"from": from, "to": mode})
	return nil
}

func (s *ControlService) SetFan(ctx context.Context, fan models.FanSetting) error {
	if err := s.session.update(func(st *models.ThermostatState) error {
		return thermostat.SetFan(st, fan)
	}); err != nil {
		return err
	}
	s.events.record(ctx, models.EventFanChange, "Fan → "+string(fan), map[string]any{"fan": fan})
	return nil
}

func (s *ControlService) SetComfort(ctx context.Context, name string) error {
	if err := s.session.update(func(st *models.ThermostatState) error {
		return thermostat.SetComfort(st, name)
	}); err != nil {
		return err
	}
	s.events.record(ctx, models.EventComfortChange, "Comfort → "+name, map[string]any{"comfort": name})
	return nil
}

// SetSetpoint stores a clamped setpoint and returns the stored value.
func (s *ControlService) SetSetpoint(ctx context.Context, p SetpointParams) (int, error) {
	var (
		stored  int
		comfort string
	)
	err := s.session.update(func(st *models.ThermostatState) error {
		comfort = p.Comfort
		if comfort == "" {
			comfort = st.Comfort
		}
		v, err := thermostat.SetSetpoint(st, comfort, p.Target, p.Value)
		stored = v
		return err
	})
	if err != nil {
		return 0, err
	}
	s.recordSetpoint(ctx, comfort, p.Target, p.Value, stored)
	return stored, nil
}

// SetComfortSetpoints writes both fields of a comfort, creating it if needed.
func (s *ControlService) SetComfortSetpoints(ctx context.Context, name string, heat, cool int) (models.Setpoint, error) {
	if name == "" {
		return models.Setpoint{}, thermostat.ErrInvalidComfort
	}
	var sp models.Setpoint
	_ = s.session.update(func(st *models.ThermostatState) error {
		sp = thermostat.SetComfortSetpoints(st, name, heat, cool)
		return nil
	})
	s.events.record(ctx, models.EventSetpointChange,
		fmt.Sprintf("%s setpoints → heat %d, cool %d", name, sp.Heat, sp.Cool),
		map[string]any{"comfort": name, "heat": sp.Heat, "cool": sp.Cool})
	return sp, nil
}

func (s *ControlService) SetDialTarget(_ context.Context, target models.SetpointTarget) error {
	return s.session.update(func(st *models.ThermostatState) error {
		return thermostat.SetDialTarget(st, target)
	})
}

// StepDial nudges the dial-selected setpoint and returns the stored value.
func (s *ControlService) StepDial(ctx context.Context, delta int) (int, error) {
	var (
		stored  int
		comfort string
		target  models.SetpointTarget
	)
	_ = s.session.update(func(st *models.ThermostatState) error {
		comfort, target = st.Comfort, st.DialTarget
		stored = thermostat.StepDial(st, delta)
		return nil
	})
	s.events.record(ctx, models.EventSetpointChange,
		fmt.Sprintf("%s %s setpoint → %d", comfort, target, stored),
		map[string]any{"comfort": comfort, "target": target, "delta": delta, "stored": stored})
	return stored, nil
}

func (s *ControlService) SetLocation(ctx context.Context, text string) error {
	var loc string
	if err := s.session.update(func(st *models.ThermostatState) error {
		if err := thermostat.SetLocation(st, text); err != nil {
			return err
		}
		loc = st.Location
		return nil
	}); err != nil {
		return err
	}
	s.events.record(ctx, models.EventLocationChange, "Location → "+loc, map[string]any{"location": loc})
	return nil
}

func (s *ControlService) recordSetpoint(ctx context.Context, comfort string, target models.SetpointTarget, requested, stored int) {
	s.events.record(ctx, models.EventSetpointChange,
		fmt.Sprintf("%s %s setpoint → %d", comfort, target, stored),
		map[string]any{"comfort": comfort, "target": target, "requested": requested, "stored": stored})
}
