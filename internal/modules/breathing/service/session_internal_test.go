package service

import (
	"context"
	"testing"
	"time"

	"brightbuddy/internal/modules/breathing/domain"
	"brightbuddy/internal/platform/clock"
)

type stillClock struct{}

func (stillClock) Now() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }

type silentTicker struct{ ch chan time.Time }

func (t silentTicker) C() <-chan time.Time { return t.ch }
func (silentTicker) Stop()                 {}

type staticID struct{}

func (staticID) New() string { return "breath-internal" }

func TestTickAfterStopKeepsState(t *testing.T) {
	t.Parallel()
	newTicker := func(time.Duration) clock.Ticker { return silentTicker{ch: make(chan time.Time)} }
	svc := NewSessionService(stillClock{}, newTicker, staticID{}, nil, nil)
	sess := svc.Start(context.Background(), domain.ModeCalm)
	before := sess.State()

	sess.Stop()
	got := sess.tick(context.Background())

	if got != before {
		t.Fatalf("expected state %+v after stop, got %+v", before, got)
	}
	// Start left one state buffered ahead of the close.
	<-sess.Updates()
	if _, ok := <-sess.Updates(); ok {
		t.Fatalf("expected updates closed after stop")
	}
}
