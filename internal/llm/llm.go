package llm

import (
	"context"
	"errors"
)

// Client abstracts chat-completion providers for document correction.
type Client interface {
	// CorrectDocument sends the compiled remediation prompt and returns the
	// rewritten document text. Implementations must validate that the
	// returned content is non-empty after trimming.
	CorrectDocument(ctx context.Context, input CorrectInput) (string, error)

	// Model reports the model identifier used for correction calls.
	Model() string
}

// CorrectInput captures the inputs for a correction request.
type CorrectInput struct {
	SystemPrompt string
	UserPrompt   string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// CorrectDocument returns ErrNotImplemented.
func (PlaceholderClient) CorrectDocument(ctx context.Context, input CorrectInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotImplemented
}

// Model returns an empty model identifier.
func (PlaceholderClient) Model() string { return "" }
