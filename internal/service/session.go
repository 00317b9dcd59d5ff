package service

import (
	"sync"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/proposal"
)

// Session is the one live thermostat: its state, the proposal slot and the
// last assistant reply. mu guards all three; turnMu serialises assistant
// turns so at most one producer call is in flight.
type Session struct {
	mu        sync.Mutex
	turnMu    sync.Mutex
	state     *models.ThermostatState
	proposals *proposal.Machine
	lastReply string
}

// NewSession starts from the documented defaults with nothing pending and
// the greeting as the last reply.
func NewSession() (*Session, error) {
	m, err := proposal.New()
	if err != nil {
		return nil, err
	}
	return &Session{state: models.NewThermostatState(), proposals: m, lastReply: GreetingReply}, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() models.ThermostatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// update runs fn with the state lock held.
func (s *Session) update(fn func(st *models.ThermostatState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}
