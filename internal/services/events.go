package services

import (
	"context"

	"github.com/rs/zerolog/log"
)

// pendingEvent is a buffered event publication. Operations collect their
// events while mutating state and publish them only once the whole
// operation committed, so a rolled-back operation leaves no trace on the
// queue.
type pendingEvent func(ctx context.Context) error

// publishEvents flushes buffered events after the operation committed.
// Publish failures are logged and counted but do not fail the operation:
// the state change already happened and must not be rolled back for a
// broker hiccup.
func (s *Service) publishEvents(ctx context.Context, events []pendingEvent) {
	for _, publish := range events {
		if err := publish(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to publish bridge event")
		}
	}
}
