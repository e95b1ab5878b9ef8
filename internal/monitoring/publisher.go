package monitoring

import (
	"context"
	"time"

	"github.com/inkpost/inkpost-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Publisher promotes posts whose scheduled publish time has passed. It runs
// as a background job for the life of the process.
type Publisher struct {
	posts services.PostServiceProvider
	cron  *cron.Cron
}

// NewPublisher creates a new Publisher.
func NewPublisher(posts services.PostServiceProvider) *Publisher {
	return &Publisher{
		posts: posts,
		cron:  cron.New(),
	}
}

// Start begins the publishing loop: one sweep immediately, then one every
// minute.
func (p *Publisher) Start() error {
	log.Info().Msg("Starting scheduled-publish worker...")

	if _, err := p.cron.AddFunc("@every 1m", p.sweep); err != nil {
		return err
	}
	p.cron.Start()

	go p.sweep()
	return nil
}

// Stop halts the publishing loop, waiting for a running sweep to finish.
func (p *Publisher) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("Stopped scheduled-publish worker.")
}

func (p *Publisher) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	published, err := p.posts.PublishDue(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("Scheduled-publish sweep failed")
		return
	}
	if published > 0 {
		log.Info().Int("count", published).Msg("Scheduled-publish sweep complete")
	}
}
