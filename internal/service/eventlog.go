package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
)

// Proposal outcomes accepted by LogFilter.Outcome.
const (
	OutcomeProposed  = "proposed"
	OutcomeConfirmed = "confirmed"
	OutcomeCancelled = "cancelled"
)

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidEventType = errors.New("invalid event type")
	ErrInvalidOutcome   = errors.New("invalid outcome; use proposed, confirmed or cancelled")
)

var outcomeEventType = map[string]string{
	OutcomeProposed:  models.EventActionProposed,
	OutcomeConfirmed: models.EventActionConfirmed,
	OutcomeCancelled: models.EventActionCancelled,
}

// EventLogService reads the thermostat event log.
type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// List returns events matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ThermostatEvent, error) {
	from, to := normalizeToUTC(f.From), normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, ErrInvalidTimeRange
	}
	typ, err := resolveEventType(f.Type, f.Outcome)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, from, to, typ)
}

// resolveEventType folds the type and outcome filters into the single type
// the repository filters on. An outcome that contradicts an explicit type is
// rejected rather than silently returning nothing.
func resolveEventType(typ, outcome string) (string, error) {
	typ = normalizeEventType(typ)
	if typ != "" && !models.IsEventType(typ) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEventType, typ)
	}

	outcome = strings.ToLower(strings.TrimSpace(outcome))
	if outcome == "" {
		return typ, nil
	}
	byOutcome, ok := outcomeEventType[outcome]
	if !ok {
		return "", ErrInvalidOutcome
	}
	if typ != "" && typ != byOutcome {
		return "", fmt.Errorf("%w: %s does not match outcome %s", ErrInvalidEventType, typ, outcome)
	}
	return byOutcome, nil
}

// CountByType tallies events per type.
func CountByType(events []models.ThermostatEvent) map[string]int {
	out := make(map[string]int)
	for _, e := range events {
		out[e.Type]++
	}
	return out
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}
