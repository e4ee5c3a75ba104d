package schedule_test

import (
	"testing"
	"time"

	"brightbuddy/internal/platform/schedule"
)

func TestMidnightSchedulesNextDayStart(t *testing.T) {
	t.Parallel()
	loc := time.UTC
	m := schedule.NewMidnight(loc)
	if err := m.Start(func() {}); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer m.Stop()

	next := m.NextRun().In(loc)
	if next.Hour() != 0 || next.Minute() != 0 || next.Second() != 0 {
		t.Fatalf("expected a midnight run, got %s", next)
	}
	if !next.After(time.Now().In(loc)) || next.Sub(time.Now()) > 24*time.Hour {
		t.Fatalf("expected next run within the coming day, got %s", next)
	}
}
