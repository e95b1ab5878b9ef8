package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inkpost/inkpost-be/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateService_CreatesUnpublishedDraft(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	posts := NewPostService(store)
	owner := createTestUser(t, store, "alice@example.com")

	provider := &generation.StaticProvider{Text: "A generated essay about gophers."}
	svc := NewGenerateService(provider, posts, time.Second)

	post, err := svc.GenerateDraft(context.Background(), owner.ID, "Gophers", "playful")
	require.NoError(t, err)

	assert.Equal(t, "Gophers", post.Title)
	assert.Equal(t, "A generated essay about gophers.", post.Content)
	assert.True(t, post.IsDraft)
	assert.False(t, post.IsPublic)
	assert.False(t, post.ExternallyReadable())

	// The draft is hidden from anonymous readers but present for the owner.
	_, err = posts.GetPublicByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	owned, err := posts.ListByOwner(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, post.ID, owned[0].ID)
}

func TestGenerateService_EmptyOutputFails(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	posts := NewPostService(store)
	owner := createTestUser(t, store, "bob@example.com")

	provider := &generation.StaticProvider{Text: ""}
	svc := NewGenerateService(provider, posts, time.Second)

	_, err := svc.GenerateDraft(context.Background(), owner.ID, "Nothing", "terse")
	assert.ErrorIs(t, err, ErrGenerationFailed)

	owned, err := posts.ListByOwner(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestGenerateService_ProviderErrorFails(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	posts := NewPostService(store)
	owner := createTestUser(t, store, "carol@example.com")

	provider := &generation.StaticProvider{Err: errors.New("upstream unavailable")}
	svc := NewGenerateService(provider, posts, time.Second)

	_, err := svc.GenerateDraft(context.Background(), owner.ID, "Anything", "formal")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGenerateService_TimeoutFails(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	posts := NewPostService(store)
	owner := createTestUser(t, store, "dave@example.com")

	svc := NewGenerateService(slowProvider{}, posts, 10*time.Millisecond)

	_, err := svc.GenerateDraft(context.Background(), owner.ID, "Patience", "slow")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

type slowProvider struct{}

func (slowProvider) Complete(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Second):
		return "too late", nil
	}
}
