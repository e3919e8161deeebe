// Package ai provides abstractions for hosted model integrations.
package ai

import "context"

// Client is an abstraction over concrete conversational model providers.
// Prompts go in as text, responses come back as opaque text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
