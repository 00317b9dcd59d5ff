package db_test

import (
	"context"
	"testing"
	"time"

	"smart_thermostat/internal/models"
	"smart_thermostat/internal/repository"
	"smart_thermostat/internal/repository/db"
)

func TestInitDB_InMemoryRoundTrip(t *testing.T) {
	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ctx := context.Background()
	repos := repository.NewRepository(conn)

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, typ := range []string{models.EventModeChange, models.EventFanChange, models.EventModeChange} {
		err := repos.EventRepo.Append(ctx, models.ThermostatEvent{
			OccurredAt:  base.Add(time.Duration(i) * time.Minute),
			Type:        typ,
			Description: typ,
		})
		if err != nil {
			t.Fatalf("Append event %d: %v", i, err)
		}
	}

	modes, err := repos.EventRepo.List(ctx, time.Time{}, time.Time{}, models.EventModeChange)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(modes) != 2 {
		t.Fatalf("want 2 MODE_CHANGE events, got %d", len(modes))
	}

	for _, m := range []models.ChatMessage{
		{Role: models.RoleUser, Content: "one"},
		{Role: models.RoleAssistant, Content: "two"},
		{Role: models.RoleUser, Content: "three"},
	} {
		if err := repos.HistoryRepo.Append(ctx, m); err != nil {
			t.Fatalf("Append message: %v", err)
		}
	}
	tail, err := repos.HistoryRepo.Tail(ctx, 2)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(tail) != 2 || tail[0].Content != "two" || tail[1].Content != "three" {
		t.Fatalf("unexpected tail: %+v", tail)
	}
	all, err := repos.HistoryRepo.List(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("List: %v, %d messages", err, len(all))
	}
}
