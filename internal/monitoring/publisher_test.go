package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/inkpost/inkpost-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPosts struct {
	services.PostServiceProvider
	calls chan time.Time
}

func (s *stubPosts) PublishDue(ctx context.Context, now time.Time) (int, error) {
	s.calls <- now
	return 0, nil
}

func TestPublisher_SweepsImmediatelyOnStart(t *testing.T) {
	t.Parallel()

	posts := &stubPosts{calls: make(chan time.Time, 1)}
	p := NewPublisher(posts)

	require.NoError(t, p.Start())
	defer p.Stop()

	select {
	case now := <-posts.calls:
		assert.WithinDuration(t, time.Now(), now, 5*time.Second)
	case <-time.After(2 * time.Second):
		t.Fatal("publisher did not sweep after start")
	}
}
