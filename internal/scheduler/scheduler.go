package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Scheduler re-runs the render job on a fixed interval. Used only when the
// --every flag is given; without it the tool stays one-shot.
type Scheduler struct {
	scheduler *gocron.Scheduler
	interval  time.Duration
	job       func() error
}

// New creates a new Scheduler around job.
func New(interval time.Duration, job func() error) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		interval:  interval,
		job:       job,
	}
}

// Run schedules the job and blocks forever. Job failures are logged, not
// fatal: the next tick gets another chance.
func (s *Scheduler) Run() error {
	_, err := s.scheduler.Every(s.interval).Do(func() {
		log.Println("INFO: scheduler: running render job")
		if err := s.job(); err != nil {
			log.Printf("ERROR: scheduler: render job failed: %v", err)
			return
		}
		log.Println("INFO: scheduler: completed render job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartBlocking()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
