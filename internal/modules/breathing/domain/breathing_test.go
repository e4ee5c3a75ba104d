package domain_test

import (
	"math"
	"testing"
	"time"

	"brightbuddy/internal/modules/breathing/domain"
)

func TestCalmTicksDownThenHolds(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine(domain.ModeCalm)
	var seen []int
	seen = append(seen, m.State().Countdown)
	for i := 0; i < 3; i++ {
		s, changed := m.Tick()
		if changed {
			t.Fatalf("phase changed too early at tick %d", i+1)
		}
		seen = append(seen, s.Countdown)
	}
	want := []int{4, 3, 2, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("countdown sequence %v, want %v", seen, want)
		}
	}
	s, changed := m.Tick()
	if !changed || s.Phase != domain.PhaseHold || s.Countdown != 2 {
		t.Fatalf("expected hold(2) after the fourth tick, got %+v changed=%v", s, changed)
	}
}

func TestEveryModeCyclesInHoldOut(t *testing.T) {
	t.Parallel()
	for _, mode := range domain.Modes {
		mode := mode
		t.Run(string(mode), func(t *testing.T) {
			t.Parallel()
			pace := mode.Pace()
			m := domain.NewMachine(mode)
			order := []domain.Phase{domain.PhaseIn, domain.PhaseHold, domain.PhaseOut}
			for cycle := 0; cycle < 3; cycle++ {
				for _, phase := range order {
					s := m.State()
					if s.Phase != phase || s.Countdown != pace.Duration(phase) {
						t.Fatalf("cycle %d: expected %s(%d) at phase start, got %+v", cycle, phase, pace.Duration(phase), s)
					}
					for c := pace.Duration(phase); c > 1; c-- {
						s, changed := m.Tick()
						if changed || s.Countdown != c-1 || s.Countdown < 1 {
							t.Fatalf("cycle %d %s: bad tick %+v", cycle, phase, s)
						}
					}
					if _, changed := m.Tick(); !changed {
						t.Fatalf("cycle %d: expected phase to advance after %s", cycle, phase)
					}
				}
			}
		})
	}
}

func TestSelectModeAlwaysRestartsAtIn(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine(domain.ModeDeep)
	for i := 0; i < 7; i++ {
		m.Tick()
	}
	if m.State().Phase == domain.PhaseIn {
		t.Fatalf("expected to be past the in phase")
	}
	s := m.SelectMode(domain.ModeReset)
	if s.Phase != domain.PhaseIn || s.Countdown != 3 || s.Mode != domain.ModeReset {
		t.Fatalf("expected reset in(3), got %+v", s)
	}
	s = m.SelectMode(domain.Mode("turbo"))
	if s.Mode != domain.ModeCalm || s.Countdown != 4 {
		t.Fatalf("unknown mode should fall back to calm, got %+v", s)
	}
}

func TestPulseScaleBounds(t *testing.T) {
	t.Parallel()
	for _, mode := range domain.Modes {
		half := domain.PulseHalfCycle(mode)
		if got := domain.PulseScale(mode, 0); got != domain.PulseMin {
			t.Fatalf("%s: expected min at start, got %f", mode, got)
		}
		if got := domain.PulseScale(mode, half); math.Abs(got-domain.PulseMax) > 1e-9 {
			t.Fatalf("%s: expected max at half cycle, got %f", mode, got)
		}
		if got := domain.PulseScale(mode, 2*half); math.Abs(got-domain.PulseMin) > 1e-9 {
			t.Fatalf("%s: expected min after full cycle, got %f", mode, got)
		}
	}
	if domain.PulseHalfCycle(domain.ModeDeep) != 6*time.Second {
		t.Fatalf("deep half cycle should be 6s")
	}
}

func TestModeForFeeling(t *testing.T) {
	t.Parallel()
	cases := map[string]domain.Mode{
		"Happy":       domain.ModeReset,
		"Okay":        domain.ModeCalm,
		"Sad":         domain.ModeDeep,
		"Angry":       domain.ModeDeep,
		"Overwhelmed": domain.ModeCalm,
		"":            domain.ModeCalm,
		"Sleepy":      domain.ModeCalm,
	}
	for feeling, want := range cases {
		if got := domain.ModeForFeeling(feeling); got != want {
			t.Fatalf("feeling %q: expected %s, got %s", feeling, want, got)
		}
	}
}
