package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/tim-rayner/restaurant-review-api/internal/app/service"
	"github.com/tim-rayner/restaurant-review-api/pkg/logger"
)

// RatingScheduler periodically re-runs the rating recompute across all
// restaurants. The recompute is idempotent, so the run heals any ratings left
// behind by the accepted moderation race window.
type RatingScheduler struct {
	cron          *cron.Cron
	ratingService *service.RatingService
	spec          string
}

func NewRatingScheduler(ratingService *service.RatingService, spec string) *RatingScheduler {
	return &RatingScheduler{
		cron:          cron.New(),
		ratingService: ratingService,
		spec:          spec,
	}
}

// Start registers the reconciliation job and starts the cron loop
func (s *RatingScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled rating reconciliation", nil)

		if err := s.ratingService.ReconcileAllRatings(); err != nil {
			logger.Error("Scheduled rating reconciliation failed", err)
			return
		}

		logger.Info("Scheduled rating reconciliation finished", nil)
	})

	if err != nil {
		logger.Error("Failed to register rating reconciliation job", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Rating scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// Stop stops the cron loop
func (s *RatingScheduler) Stop() {
	logger.Info("Stopping rating scheduler...", nil)
	s.cron.Stop()
	logger.Info("Rating scheduler stopped", nil)
}
