package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
	"github.com/tracklane/project-tracker-backend/internal/projects/repository"
)

// StatsScheduler periodically logs the number of projects per state.
type StatsScheduler struct {
	repo repository.Repository
	log  zerolog.Logger
	cron *cron.Cron
}

func NewStatsScheduler(repo repository.Repository, log zerolog.Logger) *StatsScheduler {
	return &StatsScheduler{
		repo: repo,
		log:  log,
		cron: cron.New(cron.WithSeconds()),
	}
}

// Start registers the snapshot job with the given cron expression
// (six-field, seconds first) and starts the scheduler.
func (s *StatsScheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.snapshot); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("stats scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running snapshot to finish.
func (s *StatsScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *StatsScheduler) snapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Collect everything before touching the log event so a failed count
	// never leaves a half-built event behind.
	counts := make(map[domain.State]int64, len(domain.States))
	for _, state := range domain.States {
		st := state
		count, err := s.repo.Count(ctx, &st)
		if err != nil {
			s.log.Warn().Err(err).Str("state", string(state)).Msg("stats snapshot failed")
			return
		}
		counts[state] = count
	}

	event := s.log.Info()
	for _, state := range domain.States {
		event = event.Int64(string(state), counts[state])
	}
	event.Msg("project stats")
}
