package repository

import (
	"context"
	"database/sql"
	"time"

	"smart_thermostat/internal/models"
)

type EventRepo interface {
	Append(ctx context.Context, e models.ThermostatEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ThermostatEvent, error)
}

type HistoryRepo interface {
	Append(ctx context.Context, m models.ChatMessage) error
	Tail(ctx context.Context, n int) ([]models.ChatMessage, error)
	List(ctx context.Context) ([]models.ChatMessage, error)
}

type Repository struct {
	EventRepo   EventRepo
	HistoryRepo HistoryRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo:   NewEventSQLite(db),
		HistoryRepo: NewHistorySQLite(db),
	}
}
