package service

import (
	"context"
	"sync"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/speech/domain"
	speechout "brightbuddy/internal/modules/speech/port/out"
	"brightbuddy/internal/platform/logging"
)

const sayTimeout = 5 * time.Second

// SpeechService plays one utterance at a time. A new utterance replaces any
// that is still waiting, so the voice never falls behind the screen.
type SpeechService struct {
	voice   speechout.Voice
	logger  hclog.Logger
	enabled bool

	pending chan domain.Utterance
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewSpeechService(voice speechout.Voice, enabled bool, logger hclog.Logger) *SpeechService {
	s := &SpeechService{
		voice:   voice,
		logger:  logging.OrNull(logger),
		enabled: enabled,
		pending: make(chan domain.Utterance, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *SpeechService) Speak(utterance domain.Utterance) error {
	u, err := utterance.Normalize()
	if err != nil {
		return err
	}
	if !s.enabled {
		return nil
	}
	select {
	case <-s.quit:
		return nil
	default:
	}
	select {
	case dropped := <-s.pending:
		s.logger.Trace("utterance replaced", "text", dropped.Text)
	default:
	}
	select {
	case s.pending <- u:
	default:
	}
	return nil
}

func (s *SpeechService) run() {
	defer close(s.done)
	for {
		select {
		case <-s.quit:
			return
		case u := <-s.pending:
			ctx, cancel := context.WithTimeout(context.Background(), sayTimeout)
			if err := s.voice.Say(ctx, u); err != nil {
				s.logger.Warn("speak failed", "text", u.Text, "error", err)
			}
			cancel()
		}
	}
}

// Close drains the worker and releases the voice.
func (s *SpeechService) Close() error {
	var err error
	s.once.Do(func() {
		close(s.quit)
		<-s.done
		err = s.voice.Close()
	})
	return err
}
