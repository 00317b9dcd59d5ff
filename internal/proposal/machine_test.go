package proposal

import (
	"errors"
	"testing"

	"smart_thermostat/internal/action"
	"smart_thermostat/internal/models"
)

func newMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestMachine_StartsIdle(t *testing.T) {
	m := newMachine(t)
	if m.State() != StateIdle {
		t.Fatalf("state = %s", m.State())
	}
	if _, ok := m.Pending(); ok {
		t.Fatalf("fresh machine has a pending proposal")
	}
}

func TestMachine_ProposeConfirm(t *testing.T) {
	m := newMachine(t)
	a := action.SetHvacMode{Mode: models.HvacCool}

	replaced, err := m.Propose(a, "Confirm to apply.")
	if err != nil || replaced {
		t.Fatalf("Propose: replaced=%v err=%v", replaced, err)
	}
	if m.State() != StatePending {
		t.Fatalf("state = %s", m.State())
	}
	slot, ok := m.Pending()
	if !ok || slot.Action != a || slot.Explainer != "Confirm to apply." || slot.ProposedAt.IsZero() {
		t.Fatalf("pending = %+v, %v", slot, ok)
	}

	calls := 0
	status, err := m.Confirm(func(got action.Action) string {
		calls++
		if got != a {
			t.Fatalf("applier got %#v", got)
		}
		return "Applied: HVAC mode → Cool"
	})
	if err != nil || status != "Applied: HVAC mode → Cool" {
		t.Fatalf("Confirm = %q, %v", status, err)
	}
	if calls != 1 {
		t.Fatalf("applier called %d times", calls)
	}
	if m.State() != StateIdle {
		t.Fatalf("state after confirm = %s", m.State())
	}

	if _, err := m.Confirm(func(action.Action) string { calls++; return "" }); !errors.Is(err, ErrNothingPending) {
		t.Fatalf("second Confirm err = %v", err)
	}
	if err := m.Cancel(); !errors.Is(err, ErrNothingPending) {
		t.Fatalf("Cancel after confirm err = %v", err)
	}
	if calls != 1 {
		t.Fatalf("applier called %d times", calls)
	}
}

func TestMachine_ProposeCancel(t *testing.T) {
	m := newMachine(t)
	if _, err := m.Propose(action.SetFan{Fan: models.FanOn}, ""); err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if err := m.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, ok := m.Pending(); ok {
		t.Fatalf("slot not cleared")
	}
	_, err := m.Confirm(func(action.Action) string {
		t.Fatalf("cancelled proposal must not be applied")
		return ""
	})
	if !errors.Is(err, ErrNothingPending) {
		t.Fatalf("Confirm after cancel err = %v", err)
	}
}

func TestMachine_ProposeReplaces(t *testing.T) {
	m := newMachine(t)
	first := action.SetComfort{Comfort: "Home"}
	second := action.SetComfort{Comfort: "Sleep"}

	if _, err := m.Propose(first, ""); err != nil {
		t.Fatalf("Propose first: %v", err)
	}
	replaced, err := m.Propose(second, "")
	if err != nil || !replaced {
		t.Fatalf("Propose second: replaced=%v err=%v", replaced, err)
	}
	slot, _ := m.Pending()
	if slot.Action != second {
		t.Fatalf("pending = %#v; want %#v", slot.Action, second)
	}
}

func TestMachine_RejectsInapplicable(t *testing.T) {
	m := newMachine(t)
	for _, a := range []action.Action{nil, action.Unknown{Type: "reboot"}} {
		if _, err := m.Propose(a, ""); !errors.Is(err, ErrNoAction) {
			t.Fatalf("Propose(%#v) err = %v", a, err)
		}
	}
	if m.State() != StateIdle {
		t.Fatalf("state = %s", m.State())
	}
}
