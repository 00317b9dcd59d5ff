package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"smart_thermostat/internal/models"
)

// ----------- Simulation constants -----------
const (
	StepF      = 1 // °F per tick while heating, cooling or drifting
	AuxStepF   = 2 // °F per tick with auxiliary heat
	maxIndoorF = 110
	minIndoorF = 20
)

// SimulatorService moves the indoor temperature toward the active comfort.
type SimulatorService struct {
	session *Session
	events  *recorder
}

// NewSimulatorService returns a simulator over session.
func NewSimulatorService(session *Session, events *recorder) *SimulatorService {
	return &SimulatorService{session: session, events: events}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Step(ctx)
		}
	}
}

// Step advances the simulation by one tick. It reports whether the indoor
// temperature moved.
func (s *SimulatorService) Step(ctx context.Context) bool {
	var from, to int
	var mode models.HvacMode
	changed := false
	_ = s.session.update(func(st *models.ThermostatState) error {
		from, mode = st.IndoorTempF, st.HvacMode
		to = nextIndoor(st)
		if to != from {
			st.IndoorTempF = to
			st.UpdatedAt = time.Now().UTC()
			changed = true
		}
		return nil
	})
	if changed {
		s.events.record(ctx, models.EventIndoorDrift, fmt.Sprintf("Indoor %d°F → %d°F", from, to),
			map[string]any{"from": from, "to": to, "mode": mode})
	}
	return changed
}

// nextIndoor is the indoor temperature after one tick.
func nextIndoor(st *models.ThermostatState) int {
	cur := st.IndoorTempF
	sp := st.ActiveSetpoint()
	var next int
	switch st.HvacMode {
	case models.HvacHeat:
		next = heatToward(cur, sp.Heat, StepF)
	case models.HvacAux:
		next = heatToward(cur, sp.Heat, AuxStepF)
	case models.HvacCool:
		next = coolToward(cur, sp.Cool, StepF)
	case models.HvacAuto:
		switch {
		case cur < sp.Heat:
			next = heatToward(cur, sp.Heat, StepF)
		case cur > sp.Cool:
			next = coolToward(cur, sp.Cool, StepF)
		default:
			next = cur
		}
	default:
		next = driftToOutdoor(cur, st.OutdoorTempF)
	}
	return max(minIndoorF, min(maxIndoorF, next))
}

func heatToward(cur, target, step int) int {
	if cur >= target {
		return cur
	}
	return min(cur+step, target)
}

func coolToward(cur, target, step int) int {
	if cur <= target {
		return cur
	}
	return max(cur-step, target)
}

// driftToOutdoor moves one step toward the outdoor reading, if there is one.
func driftToOutdoor(cur int, outdoor *float64) int {
	if outdoor == nil {
		return cur
	}
	target := int(math.Round(*outdoor))
	switch {
	case cur < target:
		return cur + StepF
	case cur > target:
		return cur - StepF
	}
	return cur
}
