package cronjob

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/canvashq/canvas-backend/internal/maintenance"
)

// Scheduler runs the retention purge in-process on a cron schedule.
type Scheduler struct {
	purger        *maintenance.Purger
	spec          string
	olderThanDays int
}

func NewScheduler(purger *maintenance.Purger, spec string, olderThanDays int) *Scheduler {
	return &Scheduler{purger: purger, spec: spec, olderThanDays: olderThanDays}
}

// Start registers the cron task and starts the scheduler. It blocks until
// ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		log.Println("[cron] retention purge started")
		if _, err := s.purger.Run(ctx, s.olderThanDays); err != nil {
			log.Printf("[error] retention purge: %v", err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("[cron] scheduler started (spec=%q, purge older than %d days)", s.spec, s.olderThanDays)
	c.Start()

	<-ctx.Done()
	c.Stop()
	return nil
}
