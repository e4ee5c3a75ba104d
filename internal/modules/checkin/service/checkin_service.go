package service

import (
	"context"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/checkin/domain"
	checkinout "brightbuddy/internal/modules/checkin/port/out"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/platform/logging"
)

type CheckinService struct {
	store   checkinout.FeelingStore
	speaker checkinout.Speaker
	logger  hclog.Logger

	mu   sync.Mutex
	last domain.Feeling
}

func NewCheckinService(store checkinout.FeelingStore, speaker checkinout.Speaker, logger hclog.Logger) *CheckinService {
	return &CheckinService{store: store, speaker: speaker, logger: logging.OrNull(logger)}
}

// Record announces the feeling and persists it. On a write failure the feeling
// stays current for this process and ErrStorageWrite is returned.
func (s *CheckinService) Record(ctx context.Context, raw string) (domain.Feeling, error) {
	feeling, err := domain.Parse(raw)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.last = feeling
	s.mu.Unlock()

	if s.speaker != nil {
		voice := feeling.Voice()
		if err := s.speaker.Speak(ctx, feeling.Announcement(), voice.Rate, voice.Pitch); err != nil {
			s.logger.Warn("announce feeling", "feeling", feeling, "error", err)
		}
	}
	if err := s.store.Save(ctx, feeling); err != nil {
		s.logger.Error("save feeling", "feeling", feeling, "error", err)
		return feeling, fmt.Errorf("save feeling: %w: %w", apperrors.ErrStorageWrite, err)
	}
	return feeling, nil
}

// Current returns the most recent feeling, or false when there is none.
func (s *CheckinService) Current(ctx context.Context) (domain.Feeling, bool) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last != "" {
		return last, true
	}
	feeling, ok, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("load feeling", "error", err)
		return "", false
	}
	return feeling, ok
}
