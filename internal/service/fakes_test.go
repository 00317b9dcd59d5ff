package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"smart_thermostat/internal/action"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/weather"
)

// fakeEventRepo records appends and answers List with canned results.
type fakeEventRepo struct {
	mu      sync.Mutex
	appends []models.ThermostatEvent

	gotFrom time.Time
	gotTo   time.Time
	gotType string

	events    []models.ThermostatEvent
	err       error
	appendErr error
	calls     int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.ThermostatEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends = append(f.appends, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.ThermostatEvent, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.err
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appends))
	for _, e := range f.appends {
		out = append(out, e.Type)
	}
	return out
}

// fakeHistoryRepo keeps messages in memory.
type fakeHistoryRepo struct {
	msgs []models.ChatMessage
	err  error
}

func (f *fakeHistoryRepo) Append(_ context.Context, m models.ChatMessage) error {
	f.msgs = append(f.msgs, m)
	return f.err
}

func (f *fakeHistoryRepo) Tail(_ context.Context, n int) ([]models.ChatMessage, error) {
	if n >= len(f.msgs) {
		return f.msgs, f.err
	}
	return f.msgs[len(f.msgs)-n:], f.err
}

func (f *fakeHistoryRepo) List(_ context.Context) ([]models.ChatMessage, error) {
	return f.msgs, f.err
}

// fakeTurns returns scripted replies and records the snapshots it saw.
type fakeTurns struct {
	reply  string
	action action.Action
	seen   []models.ThermostatState
	hook   func()
}

func (f *fakeTurns) RequestTurn(_ context.Context, st *models.ThermostatState, _ string) (string, action.Action) {
	f.seen = append(f.seen, *st)
	if f.hook != nil {
		f.hook()
	}
	return f.reply, f.action
}

// fakeProvider is a scripted weather.Provider.
type fakeProvider struct {
	places     []models.Place
	searchErr  error
	reading    weather.Reading
	currentErr error

	queries []string
	counts  []int
	hook    func()
}

func (f *fakeProvider) Search(_ context.Context, name string, count int) ([]models.Place, error) {
	f.queries = append(f.queries, name)
	f.counts = append(f.counts, count)
	return f.places, f.searchErr
}

func (f *fakeProvider) Current(_ context.Context, _, _ float64) (weather.Reading, error) {
	if f.hook != nil {
		f.hook()
	}
	return f.reading, f.currentErr
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession()
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func ptr[T any](v T) *T { return &v }
