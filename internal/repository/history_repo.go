package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smart_thermostat/internal/models"

	"github.com/google/uuid"
)

// HistorySQLite stores the append-only assistant conversation.
type HistorySQLite struct {
	db *sql.DB
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite { return &HistorySQLite{db: db} }

var _ HistoryRepo = (*HistorySQLite)(nil)

const (
	insertMessageSQL = `
		INSERT INTO conversation_messages (id, role, content, created_at)
		VALUES (?, ?, ?, ?)
	`
	// newest n by insertion order, returned oldest first
	selectTailSQL = `
		SELECT id, role, content, created_at FROM (
			SELECT seq, id, role, content, created_at FROM conversation_messages
			ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC
	`
	selectAllMessagesSQL = `SELECT id, role, content, created_at FROM conversation_messages ORDER BY seq ASC`
)

// Append stores m, filling in ID and CreatedAt when empty.
func (r *HistorySQLite) Append(ctx context.Context, m models.ChatMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if _, err := r.db.ExecContext(ctx, insertMessageSQL, m.ID, string(m.Role), m.Content, m.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("insert message %s: %w", m.ID, err)
	}
	return nil
}

// Tail returns the last n messages in conversation order.
func (r *HistorySQLite) Tail(ctx context.Context, n int) ([]models.ChatMessage, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.query(ctx, selectTailSQL, n)
}

// List returns the whole conversation in order.
func (r *HistorySQLite) List(ctx context.Context) ([]models.ChatMessage, error) {
	return r.query(ctx, selectAllMessagesSQL)
}

func (r *HistorySQLite) query(ctx context.Context, q string, args ...any) ([]models.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var out []models.ChatMessage
	for rows.Next() {
		var (
			m    models.ChatMessage
			role string
		)
		if err := rows.Scan(&m.ID, &role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Role = models.Role(role)
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
