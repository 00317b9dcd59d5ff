package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
)

// recorder appends events on a best-effort basis: a failed append is logged
// and never undoes the state change it describes.
type recorder struct {
	repo repository.EventRepo
	log  *logger.Logger
}

func newRecorder(repo repository.EventRepo, log *logger.Logger) *recorder {
	return &recorder{repo: repo, log: log}
}

func (r *recorder) record(ctx context.Context, typ, desc string, meta map[string]any) {
	if r == nil || r.repo == nil {
		return
	}
	err := r.repo.Append(ctx, models.ThermostatEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil && r.log != nil {
		r.log.Warnw("event_append_failed", "type", typ, "err", err)
	}
}
