// Package llm abstracts the chat-completion providers used for deal
// commentary.
package llm

import (
	"context"
	"fmt"
)

// Provider is a single-turn completion backend.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// New returns the provider registered under name.
func New(name string) (Provider, error) {
	switch name {
	case "gemini":
		return &GeminiProvider{}, nil
	case "deepseek":
		return &DeepSeekProvider{}, nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", name)
}

// Available lists the provider names New accepts.
func Available() []string {
	return []string{"gemini", "deepseek"}
}
