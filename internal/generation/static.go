package generation

import "context"

// StaticProvider returns a fixed response for every prompt. Useful for
// local development without API credentials and for deterministic tests.
type StaticProvider struct {
	Text string
	Err  error
}

var _ Provider = (*StaticProvider)(nil)

// Complete returns the configured text or error, ignoring the prompt.
func (p *StaticProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.Text, p.Err
}
