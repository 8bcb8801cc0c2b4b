package match

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// StatusSweeper advances fixture status as kick-off and full time pass.
type StatusSweeper struct {
	repo     MatchRepository
	clock    clockwork.Clock
	duration time.Duration
}

func NewStatusSweeper(repo MatchRepository, clock clockwork.Clock, duration time.Duration) *StatusSweeper {
	if duration <= 0 {
		duration = 2 * time.Hour
	}
	return &StatusSweeper{repo: repo, clock: clock, duration: duration}
}

// Sweep runs one pass and returns the number of fixtures it changed.
func (s *StatusSweeper) Sweep(ctx context.Context) (int64, error) {
	changed, err := s.repo.AdvanceStatuses(ctx, s.clock.Now(), s.duration)
	if err != nil {
		log.Error().Err(err).Msg("match status sweep failed")
		return 0, err
	}
	if changed > 0 {
		log.Info().Int64("changed", changed).Msg("match statuses advanced")
	}
	return changed, nil
}
