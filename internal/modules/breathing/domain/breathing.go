package domain

import (
	"fmt"
	"math"
	"time"
)

type Mode string

const (
	ModeCalm  Mode = "calm"
	ModeDeep  Mode = "deep"
	ModeReset Mode = "reset"
)

// Modes lists the presets in the order the mode picker shows them.
var Modes = []Mode{ModeCalm, ModeDeep, ModeReset}

type Phase string

const (
	PhaseIn   Phase = "in"
	PhaseHold Phase = "hold"
	PhaseOut  Phase = "out"
)

// Pace holds the per-phase durations of a mode, in seconds.
type Pace struct {
	In   int
	Hold int
	Out  int
}

var paces = map[Mode]Pace{
	ModeCalm:  {In: 4, Hold: 2, Out: 4},
	ModeDeep:  {In: 5, Hold: 3, Out: 5},
	ModeReset: {In: 3, Hold: 1, Out: 3},
}

var pulseHalfCycles = map[Mode]time.Duration{
	ModeCalm:  4500 * time.Millisecond,
	ModeDeep:  6000 * time.Millisecond,
	ModeReset: 3000 * time.Millisecond,
}

var cues = map[Phase]string{
	PhaseIn:   "Breathe in…",
	PhaseHold: "Hold…",
	PhaseOut:  "Breathe out…",
}

func (m Mode) Validate() error {
	if _, ok := paces[m]; !ok {
		return fmt.Errorf("unsupported breathing mode %q", string(m))
	}
	return nil
}

// Pace returns the durations for m; unknown modes get the calm pace.
func (m Mode) Pace() Pace {
	if p, ok := paces[m]; ok {
		return p
	}
	return paces[ModeCalm]
}

func (p Pace) Duration(phase Phase) int {
	switch phase {
	case PhaseHold:
		return p.Hold
	case PhaseOut:
		return p.Out
	default:
		return p.In
	}
}

// Next is the cyclic successor: in → hold → out → in.
func (p Phase) Next() Phase {
	switch p {
	case PhaseIn:
		return PhaseHold
	case PhaseHold:
		return PhaseOut
	default:
		return PhaseIn
	}
}

// Cue is the instruction shown and spoken when the phase starts.
func (p Phase) Cue() string {
	return cues[p]
}

type State struct {
	Mode      Mode
	Phase     Phase
	Countdown int
}

// Machine is the in/hold/out countdown. Countdown never drops below 1.
type Machine struct {
	state State
}

func NewMachine(mode Mode) *Machine {
	m := &Machine{}
	m.SelectMode(mode)
	return m
}

// SelectMode restarts the cycle at the in phase of mode.
func (m *Machine) SelectMode(mode Mode) State {
	if mode.Validate() != nil {
		mode = ModeCalm
	}
	m.state = State{Mode: mode, Phase: PhaseIn, Countdown: mode.Pace().In}
	return m.state
}

// Tick advances one second. The bool reports whether a new phase started.
func (m *Machine) Tick() (State, bool) {
	if m.state.Countdown > 1 {
		m.state.Countdown--
		return m.state, false
	}
	next := m.state.Phase.Next()
	m.state.Phase = next
	m.state.Countdown = m.state.Mode.Pace().Duration(next)
	return m.state, true
}

func (m *Machine) State() State {
	return m.state
}

const (
	PulseMin = 1.0
	PulseMax = 1.25
)

func PulseHalfCycle(mode Mode) time.Duration {
	if d, ok := pulseHalfCycles[mode]; ok {
		return d
	}
	return pulseHalfCycles[ModeCalm]
}

// PulseScale is the ambient circle scale at elapsed time into the mode's pulse loop.
// It grows from PulseMin to PulseMax over one half-cycle and shrinks back over the next.
func PulseScale(mode Mode, elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	half := PulseHalfCycle(mode)
	pos := elapsed % (2 * half)
	frac := float64(pos) / float64(half)
	if frac > 1 {
		frac = 2 - frac
	}
	eased := (1 - math.Cos(math.Pi*frac)) / 2
	return PulseMin + (PulseMax-PulseMin)*eased
}

var feelingModes = map[string]Mode{
	"Happy":       ModeReset,
	"Okay":        ModeCalm,
	"Sad":         ModeDeep,
	"Angry":       ModeDeep,
	"Overwhelmed": ModeCalm,
}

// ModeForFeeling picks the starting mode for the last recorded feeling.
func ModeForFeeling(feeling string) Mode {
	if m, ok := feelingModes[feeling]; ok {
		return m
	}
	return ModeCalm
}
