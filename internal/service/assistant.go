package service

import (
	"context"
	"errors"
	"strings"

	"smart_thermostat/internal/action"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/proposal"
	"smart_thermostat/internal/repository"
	"smart_thermostat/internal/thermostat"
)

// Fixed user-facing texts of the confirmation gate.
const (
	GreetingReply     = "Ask me anything about your thermostat."
	ProposalExplainer = "Confirm to apply. This may affect comfort and energy use."
	CancelledReply    = "Cancelled. No changes made."
	confirmedSuffix   = ". UI updated."
)

var ErrEmptyMessage = errors.New("message is empty")

// AssistantService stages producer proposals and applies them only on confirm.
type AssistantService struct {
	session *Session
	turns   TurnRequester
	history repository.HistoryRepo
	events  *recorder
}

func NewAssistantService(session *Session, turns TurnRequester, history repository.HistoryRepo, events *recorder) *AssistantService {
	return &AssistantService{session: session, turns: turns, history: history, events: events}
}

// Ask runs one turn against a snapshot of the state. The producer call runs
// without the state lock; a proposal it returns replaces any pending one.
func (s *AssistantService) Ask(ctx context.Context, text string) (TurnResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TurnResult{}, ErrEmptyMessage
	}

	s.session.turnMu.Lock()
	defer s.session.turnMu.Unlock()

	snap := s.session.Snapshot()
	reply, a := s.turns.RequestTurn(ctx, &snap, text)

	s.session.mu.Lock()
	s.session.lastReply = reply
	res := TurnResult{Reply: reply}
	if a != nil {
		replaced, err := s.session.proposals.Propose(a, ProposalExplainer)
		if err == nil {
			res.Replaced = replaced
			if slot, ok := s.session.proposals.Pending(); ok {
				pa := pendingView(slot, s.session.state.Comfort)
				res.Pending = &pa
			}
		}
	}
	s.session.mu.Unlock()

	if res.Pending != nil {
		s.events.record(ctx, models.EventActionProposed, res.Pending.Description,
			map[string]any{"type": res.Pending.Type, "replaced": res.Replaced})
	}
	return res, nil
}

// Confirm applies the pending action exactly once and clears it.
func (s *AssistantService) Confirm(ctx context.Context) (string, error) {
	s.session.mu.Lock()
	var kind action.Type
	status, err := s.session.proposals.Confirm(func(a action.Action) string {
		kind = a.Kind()
		return thermostat.Apply(s.session.state, a)
	})
	if err != nil {
		s.session.mu.Unlock()
		return "", err
	}
	reply := status + confirmedSuffix
	s.session.lastReply = reply
	s.session.mu.Unlock()

	s.events.record(ctx, models.EventActionConfirmed, status, map[string]any{"type": kind, "status": status})
	return reply, nil
}

// Cancel drops the pending action; the state is untouched.
func (s *AssistantService) Cancel(ctx context.Context) (string, error) {
	s.session.mu.Lock()
	slot, _ := s.session.proposals.Pending()
	if err := s.session.proposals.Cancel(); err != nil {
		s.session.mu.Unlock()
		return "", err
	}
	s.session.lastReply = CancelledReply
	s.session.mu.Unlock()

	s.events.record(ctx, models.EventActionCancelled, CancelledReply, map[string]any{"type": slot.Action.Kind()})
	return CancelledReply, nil
}

func (s *AssistantService) Pending(_ context.Context) (PendingAction, bool) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()
	slot, ok := s.session.proposals.Pending()
	if !ok {
		return PendingAction{}, false
	}
	return pendingView(slot, s.session.state.Comfort), true
}

func (s *AssistantService) History(ctx context.Context) ([]models.ChatMessage, error) {
	return s.history.List(ctx)
}

func (s *AssistantService) LastReply(_ context.Context) string {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()
	return s.session.lastReply
}

func pendingView(slot proposal.Slot, activeComfort string) PendingAction {
	return PendingAction{
		Type:        string(slot.Action.Kind()),
		Action:      slot.Action,
		Description: action.Describe(slot.Action, activeComfort),
		Explainer:   slot.Explainer,
		ProposedAt:  slot.ProposedAt,
	}
}

// IsNothingPending reports whether err means there was no proposal to act on.
func IsNothingPending(err error) bool {
	return errors.Is(err, proposal.ErrNothingPending)
}
