package service

import (
	"context"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/breathing/domain"
	breathingout "brightbuddy/internal/modules/breathing/port/out"
	"brightbuddy/internal/platform/clock"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/platform/id"
	"brightbuddy/internal/platform/logging"
)

const (
	tickPeriod = time.Second
	cueRate    = 0.9
	cuePitch   = 0.9
)

type SessionService struct {
	clock     clock.Clock
	newTicker clock.TickerFactory
	idGen     id.Generator
	speaker   breathingout.Speaker
	logger    hclog.Logger
}

// NewSessionService wires the session timer. speaker may be nil to run silently.
func NewSessionService(clk clock.Clock, newTicker clock.TickerFactory, idGen id.Generator, speaker breathingout.Speaker, logger hclog.Logger) *SessionService {
	return &SessionService{clock: clk, newTicker: newTicker, idGen: idGen, speaker: speaker, logger: logging.OrNull(logger)}
}

// Start opens a session already running in mode.
func (s *SessionService) Start(ctx context.Context, mode domain.Mode) *Session {
	sess := &Session{
		id:      s.idGen.New(),
		svc:     s,
		machine: &domain.Machine{},
		updates: make(chan domain.State, 1),
	}
	sess.logger = s.logger.With("session_id", sess.id)
	_, _ = sess.SelectMode(ctx, mode)
	sess.logger.Debug("breathing session started", "mode", string(sess.State().Mode))
	return sess
}

// Session drives a Machine from a recurring one-second ticker. Every SelectMode
// replaces the ticker, so at most one timer is live per session.
type Session struct {
	id     string
	svc    *SessionService
	logger hclog.Logger

	ctrl sync.Mutex // serialises SelectMode and Stop

	mu         sync.Mutex
	machine    *domain.Machine
	pulseEpoch time.Time

	stopLoop chan struct{}
	loopDone chan struct{}
	stopped  bool
	closed   bool // guarded by mu; set when updates is closed
	updates  chan domain.State
}

func (s *Session) ID() string { return s.id }

func (s *Session) SelectMode(ctx context.Context, mode domain.Mode) (domain.State, error) {
	if err := mode.Validate(); err != nil {
		return s.State(), err
	}
	s.ctrl.Lock()
	defer s.ctrl.Unlock()
	if s.stopped {
		return s.State(), apperrors.ErrSessionStopped
	}
	s.cancelLoop()

	s.mu.Lock()
	state := s.machine.SelectMode(mode)
	s.pulseEpoch = s.svc.clock.Now()
	s.mu.Unlock()

	s.publish(state)
	s.speak(ctx, state)

	stop := make(chan struct{})
	done := make(chan struct{})
	s.stopLoop, s.loopDone = stop, done
	go s.run(ctx, s.svc.newTicker(tickPeriod), stop, done)
	return state, nil
}

func (s *Session) run(ctx context.Context, ticker clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.tick(ctx)
		}
	}
}

// tick advances the countdown by one second and publishes the result.
// After Stop it leaves the machine as it is.
func (s *Session) tick(ctx context.Context) domain.State {
	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return s.machine.State()
	}
	state, started := s.machine.Tick()
	s.mu.Unlock()
	s.publish(state)
	if started {
		s.speak(ctx, state)
	}
	return state
}

func (s *Session) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.State()
}

func (s *Session) Updates() <-chan domain.State {
	return s.updates
}

// Pulse is the ambient circle scale. Its loop restarts on every mode change
// and is not synchronised with the phase countdown.
func (s *Session) Pulse() float64 {
	s.mu.Lock()
	mode, epoch := s.machine.State().Mode, s.pulseEpoch
	s.mu.Unlock()
	return domain.PulseScale(mode, s.svc.clock.Now().Sub(epoch))
}

// Stop cancels the timer and closes Updates. Safe to call more than once.
func (s *Session) Stop() {
	s.ctrl.Lock()
	defer s.ctrl.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	s.cancelLoop()
	s.mu.Lock()
	s.closed = true
	close(s.updates)
	s.mu.Unlock()
	s.logger.Debug("breathing session stopped")
}

func (s *Session) cancelLoop() {
	if s.stopLoop == nil {
		return
	}
	close(s.stopLoop)
	<-s.loopDone
	s.stopLoop, s.loopDone = nil, nil
}

// publish keeps only the newest state so a slow reader never blocks the timer.
func (s *Session) publish(state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- state:
	default:
	}
}

func (s *Session) speak(ctx context.Context, state domain.State) {
	if s.svc.speaker == nil {
		return
	}
	if err := s.svc.speaker.Speak(ctx, state.Phase.Cue(), cueRate, cuePitch); err != nil {
		s.logger.Warn("speak breathing cue", "phase", string(state.Phase), "error", err)
	}
}
