// Package proposal holds at most one assistant-proposed action until the user
// confirms or cancels it. The lifecycle is a two-state statekit chart.
package proposal

import (
	"errors"
	"time"

	"github.com/felixgeelhaar/statekit"

	"smart_thermostat/internal/action"
)

// State of the proposal slot.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
)

const (
	stateIdle    statekit.StateID = statekit.StateID(StateIdle)
	statePending statekit.StateID = statekit.StateID(StatePending)

	eventPropose statekit.EventType = "PROPOSE"
	eventConfirm statekit.EventType = "CONFIRM"
	eventCancel  statekit.EventType = "CANCEL"
)

var (
	ErrNothingPending = errors.New("no pending action")
	ErrNoAction       = errors.New("proposal has no applicable action")
)

// Slot is the staged proposal.
type Slot struct {
	Action     action.Action
	Explainer  string
	ProposedAt time.Time
}

// Applier commits a confirmed action and reports its status.
type Applier func(action.Action) string

// Machine wraps the statekit interpreter. It is not safe for concurrent use;
// callers serialize access.
type Machine struct {
	interp *statekit.Interpreter[*Slot]
	slot   *Slot
}

// newChart builds the idle/pending statechart.
func newChart() (*statekit.MachineConfig[*Slot], error) {
	return statekit.NewMachine[*Slot]("proposal").
		WithInitial(stateIdle).
		WithContext(&Slot{}).
		WithAction("stage", stage).
		WithAction("clear", clearSlot).
		State(stateIdle).
			On(eventPropose).Target(statePending).Do("stage").
			Done().
		State(statePending).
			On(eventPropose).Target(statePending).Do("stage").
			On(eventConfirm).Target(stateIdle).Do("clear").
			On(eventCancel).Target(stateIdle).Do("clear").
			Done().
		Build()
}

// New returns a machine in the idle state.
func New() (*Machine, error) {
	chart, err := newChart()
	if err != nil {
		return nil, err
	}
	m := &Machine{slot: &Slot{}}
	m.interp = statekit.NewInterpreter(chart)
	m.interp.UpdateContext(func(c **Slot) {
		*c = m.slot
	})
	m.interp.Start()
	return m, nil
}

// State returns the current state.
func (m *Machine) State() State {
	return State(m.interp.State().Value)
}

// Propose stages a with its explainer. A proposal made while another is
// pending replaces it; replaced reports whether that happened.
func (m *Machine) Propose(a action.Action, explainer string) (replaced bool, err error) {
	if !action.IsApplicable(a) {
		return false, ErrNoAction
	}
	replaced = m.isPending()
	m.interp.Send(statekit.Event{
		Type:    eventPropose,
		Payload: Slot{Action: a, Explainer: explainer, ProposedAt: time.Now().UTC()},
	})
	return replaced, nil
}

// Confirm applies the pending action exactly once, clears the slot and
// returns the applier's status.
func (m *Machine) Confirm(apply Applier) (string, error) {
	if !m.isPending() {
		return "", ErrNothingPending
	}
	status := apply(m.slot.Action)
	m.interp.Send(statekit.Event{Type: eventConfirm})
	return status, nil
}

// Cancel drops the pending action without applying it.
func (m *Machine) Cancel() error {
	if !m.isPending() {
		return ErrNothingPending
	}
	m.interp.Send(statekit.Event{Type: eventCancel})
	return nil
}

// Pending returns a copy of the staged proposal, if any.
func (m *Machine) Pending() (Slot, bool) {
	if !m.isPending() {
		return Slot{}, false
	}
	return *m.slot, true
}

func (m *Machine) isPending() bool {
	return m.interp.Matches(statePending)
}

// stage copies the event payload into the slot.
func stage(ctx **Slot, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	if p, ok := event.Payload.(Slot); ok {
		**ctx = p
	}
}

// clearSlot empties the slot.
func clearSlot(ctx **Slot, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	**ctx = Slot{}
}
