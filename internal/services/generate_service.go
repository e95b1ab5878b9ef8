package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inkpost/inkpost-be/internal/generation"
	"github.com/inkpost/inkpost-be/internal/models"
	"github.com/rs/zerolog/log"
)

// GenerateServiceProvider defines the interface for the generation flow.
type GenerateServiceProvider interface {
	GenerateDraft(ctx context.Context, userID, topic, style string) (models.Post, error)
}

// GenerateService produces AI-generated drafts. It makes a single attempt
// per request: generation is expensive, so retrying is left to the caller.
type GenerateService struct {
	provider generation.Provider
	posts    PostServiceProvider
	timeout  time.Duration
}

// NewGenerateService creates a new GenerateService. The timeout bounds the
// external generation call.
func NewGenerateService(provider generation.Provider, posts PostServiceProvider, timeout time.Duration) *GenerateService {
	return &GenerateService{provider: provider, posts: posts, timeout: timeout}
}

// GenerateDraft asks the provider for body text on the given topic and
// style, then persists it as an unpublished draft titled after the topic.
// Errors, timeouts, and empty output all surface as ErrGenerationFailed.
func (s *GenerateService) GenerateDraft(ctx context.Context, userID, topic, style string) (models.Post, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.provider.Complete(genCtx, generation.Prompt(topic, style))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("topic", topic).Msg("Text generation failed")
		return models.Post{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if text == "" {
		return models.Post{}, fmt.Errorf("%w: provider returned no content", ErrGenerationFailed)
	}

	// Persist on the request context, not the generation context: if the
	// caller is gone by now, the write fails instead of orphaning a draft.
	return s.posts.CreateDraft(ctx, userID, topic, text)
}
