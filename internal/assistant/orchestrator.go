// Package assistant turns a free-text user request into a reply and at most
// one proposed action, using an external language model as the producer.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart_thermostat/internal/action"
	"smart_thermostat/internal/llm"
	"smart_thermostat/internal/logger"
	"smart_thermostat/internal/models"
)

const (
	// HistoryWindow is how many past entries accompany each request.
	HistoryWindow = 8

	DefaultModel = "mistralai/devstral-2512:free"

	errorReplyPrefix = "LLM error: "
)

// History is the conversation store the orchestrator reads and appends to.
type History interface {
	Append(ctx context.Context, m models.ChatMessage) error
	Tail(ctx context.Context, n int) ([]models.ChatMessage, error)
}

// Orchestrator builds requests for the producer and parses its replies.
type Orchestrator struct {
	client  llm.Client
	model   string
	history History
	log     *logger.Logger
}

// NewOrchestrator wires an orchestrator. log may be nil.
func NewOrchestrator(client llm.Client, model string, history History, log *logger.Logger) *Orchestrator {
	if model == "" {
		model = DefaultModel
	}
	return &Orchestrator{client: client, model: model, history: history, log: log}
}

// RequestTurn runs one assistant turn against the given state snapshot.
// External failures come back as a reply describing the failure with no
// action; nothing is appended to history in that case. Only the cleaned reply
// is stored, so an action block never re-enters the context verbatim.
func (o *Orchestrator) RequestTurn(ctx context.Context, st *models.ThermostatState, userText string) (string, action.Action) {
	tail, err := o.history.Tail(ctx, HistoryWindow)
	if err != nil {
		o.logError("assistant_history_tail_failed", err)
		tail = nil
	}

	messages, err := BuildMessages(BuildSnapshot(st), tail, userText)
	if err != nil {
		o.logError("assistant_build_messages_failed", err)
		return errorReplyPrefix + err.Error(), nil
	}

	raw, err := o.client.Chat(ctx, o.model, messages)
	if err != nil {
		o.logError("assistant_llm_call_failed", err, "model", o.model)
		return errorReplyPrefix + err.Error(), nil
	}

	a, reply := action.Parse(raw)
	if a != nil && !action.IsApplicable(a) {
		if o.log != nil {
			o.log.Infow("assistant_action_ignored", "type", a.Kind(), "reason", a.(action.Unknown).Reason)
		}
		a = nil
	}

	now := time.Now().UTC()
	o.appendHistory(ctx, models.ChatMessage{ID: uuid.NewString(), Role: models.RoleUser, Content: userText, CreatedAt: now})
	o.appendHistory(ctx, models.ChatMessage{ID: uuid.NewString(), Role: models.RoleAssistant, Content: reply, CreatedAt: now})

	return reply, a
}

// BuildMessages assembles instruction, state, history tail and the new turn.
func BuildMessages(snap Snapshot, history []models.ChatMessage, userText string) ([]llm.Message, error) {
	stateJSON, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal state snapshot: %w", err)
	}
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages,
		llm.Message{Role: "system", Content: systemPrompt},
		llm.Message{Role: "system", Content: statePrefix + string(stateJSON)},
	)
	for _, m := range history {
		messages = append(messages, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: string(models.RoleUser), Content: userText})
	return messages, nil
}

func (o *Orchestrator) appendHistory(ctx context.Context, m models.ChatMessage) {
	if err := o.history.Append(ctx, m); err != nil {
		o.logError("assistant_history_append_failed", err, "role", m.Role)
	}
}

func (o *Orchestrator) logError(key string, err error, kv ...interface{}) {
	if o.log == nil {
		return
	}
	o.log.Errorw(key, append([]interface{}{"err", err}, kv...)...)
}
