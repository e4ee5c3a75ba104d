package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"brightbuddy/internal/modules/breathing/domain"
	"brightbuddy/internal/modules/breathing/service"
	"brightbuddy/internal/platform/clock"
	apperrors "brightbuddy/internal/platform/errors"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type fakeID struct{}

func (fakeID) New() string { return "breath-1" }

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}
func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type tickerFactory struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (f *tickerFactory) New(time.Duration) clock.Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *tickerFactory) latest() *fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickers[len(f.tickers)-1]
}

func (f *tickerFactory) all() []*fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeTicker(nil), f.tickers...)
}

type recordingSpeaker struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingSpeaker) Speak(_ context.Context, text string, _, _ float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
	return nil
}

func (r *recordingSpeaker) spoken() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func next(t *testing.T, updates <-chan domain.State) domain.State {
	t.Helper()
	select {
	case s, ok := <-updates:
		if !ok {
			t.Fatalf("updates closed")
		}
		return s
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for update")
	}
	return domain.State{}
}

func TestSessionTicksThroughPhasesFromTimer(t *testing.T) {
	t.Parallel()
	tickers := &tickerFactory{}
	speaker := &recordingSpeaker{}
	svc := service.NewSessionService(fixedClock{now: time.Now()}, tickers.New, fakeID{}, speaker, nil)
	sess := svc.Start(context.Background(), domain.ModeCalm)
	defer sess.Stop()

	if s := next(t, sess.Updates()); s.Phase != domain.PhaseIn || s.Countdown != 4 {
		t.Fatalf("expected in(4) on start, got %+v", s)
	}
	var countdowns []int
	for i := 0; i < 4; i++ {
		tickers.latest().ch <- time.Now()
		s := next(t, sess.Updates())
		countdowns = append(countdowns, s.Countdown)
		if i == 3 && s.Phase != domain.PhaseHold {
			t.Fatalf("expected hold after four ticks, got %+v", s)
		}
	}
	want := []int{3, 2, 1, 2}
	for i := range want {
		if countdowns[i] != want[i] {
			t.Fatalf("countdowns %v, want %v", countdowns, want)
		}
	}
	spoken := speaker.spoken()
	if len(spoken) != 2 || spoken[0] != "Breathe in…" || spoken[1] != "Hold…" {
		t.Fatalf("unexpected cues %v", spoken)
	}
}

func TestSelectModeReplacesTimer(t *testing.T) {
	t.Parallel()
	tickers := &tickerFactory{}
	svc := service.NewSessionService(fixedClock{now: time.Now()}, tickers.New, fakeID{}, nil, nil)
	sess := svc.Start(context.Background(), domain.ModeCalm)
	defer sess.Stop()
	next(t, sess.Updates())
	tickers.latest().ch <- time.Now()
	next(t, sess.Updates())

	first := tickers.latest()
	state, err := sess.SelectMode(context.Background(), domain.ModeDeep)
	if err != nil {
		t.Fatalf("select mode: %v", err)
	}
	if state.Phase != domain.PhaseIn || state.Countdown != 5 || state.Mode != domain.ModeDeep {
		t.Fatalf("expected deep in(5), got %+v", state)
	}
	if !first.isStopped() {
		t.Fatalf("previous ticker should be stopped")
	}
	if len(tickers.all()) != 2 {
		t.Fatalf("expected exactly two tickers, got %d", len(tickers.all()))
	}
	next(t, sess.Updates())
	tickers.latest().ch <- time.Now()
	if s := next(t, sess.Updates()); s.Countdown != 4 || s.Mode != domain.ModeDeep {
		t.Fatalf("expected deep countdown 4, got %+v", s)
	}
	if _, err := sess.SelectMode(context.Background(), domain.Mode("fast")); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}

func TestStopIsIdempotentAndClosesUpdates(t *testing.T) {
	t.Parallel()
	tickers := &tickerFactory{}
	svc := service.NewSessionService(fixedClock{now: time.Now()}, tickers.New, fakeID{}, nil, nil)
	sess := svc.Start(context.Background(), domain.ModeReset)
	sess.Stop()
	sess.Stop()
	if !tickers.latest().isStopped() {
		t.Fatalf("ticker should be stopped")
	}
	for range sess.Updates() {
	}
	if _, err := sess.SelectMode(context.Background(), domain.ModeCalm); err != apperrors.ErrSessionStopped {
		t.Fatalf("expected session stopped, got %v", err)
	}
	if sess.ID() != "breath-1" {
		t.Fatalf("unexpected id %s", sess.ID())
	}
}

// steppingClock is a clock the test moves forward by hand.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppingClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestPulseRestartsWithMode(t *testing.T) {
	t.Parallel()
	clk := &steppingClock{now: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	svc := service.NewSessionService(clk, (&tickerFactory{}).New, fakeID{}, nil, nil)
	sess := svc.Start(context.Background(), domain.ModeCalm)
	defer sess.Stop()
	if got := sess.Pulse(); got != domain.PulseMin {
		t.Fatalf("expected pulse to start at min, got %f", got)
	}

	clk.advance(2 * time.Second)
	if got := sess.Pulse(); got <= domain.PulseMin {
		t.Fatalf("expected pulse to grow after 2s, got %f", got)
	}

	if _, err := sess.SelectMode(context.Background(), domain.ModeDeep); err != nil {
		t.Fatalf("select deep: %v", err)
	}
	if got := sess.Pulse(); got != domain.PulseMin {
		t.Fatalf("expected pulse back at min after mode change, got %f", got)
	}
	if half := domain.PulseHalfCycle(domain.ModeDeep); half != 6000*time.Millisecond {
		t.Fatalf("expected deep half-cycle of 6s, got %s", half)
	}
	clk.advance(6 * time.Second)
	if got := sess.Pulse(); got < domain.PulseMax-1e-9 {
		t.Fatalf("expected pulse at max one deep half-cycle after the change, got %f", got)
	}
}
