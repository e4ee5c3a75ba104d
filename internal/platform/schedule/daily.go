package schedule

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
)

// Midnight runs a job at 00:00 of every day in loc.
type Midnight struct {
	scheduler *gocron.Scheduler
}

func NewMidnight(loc *time.Location) *Midnight {
	if loc == nil {
		loc = time.Local
	}
	return &Midnight{scheduler: gocron.NewScheduler(loc)}
}

// Start registers job and begins running the scheduler in the background.
func (m *Midnight) Start(job func()) error {
	if _, err := m.scheduler.Every(1).Day().At("00:00").Do(job); err != nil {
		return fmt.Errorf("schedule midnight job: %w", err)
	}
	m.scheduler.StartAsync()
	return nil
}

// NextRun reports when the job fires next; zero before Start.
func (m *Midnight) NextRun() time.Time {
	_, next := m.scheduler.NextRun()
	return next
}

func (m *Midnight) Stop() {
	m.scheduler.Stop()
}
