package clock_test

import (
	"testing"
	"time"

	"brightbuddy/internal/platform/clock"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func TestTodayUsesClockLocation(t *testing.T) {
	t.Parallel()
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:30 UTC on the 15th is already the 16th in Tokyo.
	utc := time.Date(2026, 10, 15, 20, 30, 0, 0, time.UTC)
	if got := clock.Today(fixedClock{now: utc}); got != "2026-10-15" {
		t.Fatalf("expected utc day 2026-10-15, got %s", got)
	}
	if got := clock.Today(fixedClock{now: utc.In(tokyo)}); got != "2026-10-16" {
		t.Fatalf("expected tokyo day 2026-10-16, got %s", got)
	}
}

func TestSystemClockHonoursLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("X", 3*60*60)
	now := clock.SystemClock{Location: loc}.Now()
	if now.Location() != loc {
		t.Fatalf("expected location %v, got %v", loc, now.Location())
	}
}

func TestSystemTickerStops(t *testing.T) {
	t.Parallel()
	tk := clock.NewSystemTicker(5 * time.Millisecond)
	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatalf("ticker never fired")
	}
	tk.Stop()
}
