// Package generation wraps the external text-generation dependency behind a
// one-method interface so callers and tests can swap the backend.
package generation

import (
	"context"
	"fmt"
)

// Provider is a text-generation backend (OpenAI, a local model, a test stub).
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Prompt builds the generation directive for a blog draft.
func Prompt(topic, style string) string {
	return fmt.Sprintf("Write a detailed blog post about %q in a %q tone.", topic, style)
}
