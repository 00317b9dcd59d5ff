// Package llm talks to an OpenAI-compatible chat-completions endpoint.
package llm

import "context"

// Message is one chat message sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the text-completion producer the assistant depends on.
type Client interface {
	// Chat sends messages and returns the model's raw reply text.
	Chat(ctx context.Context, model string, messages []Message) (string, error)
}
