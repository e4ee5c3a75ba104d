package in

import (
	"context"

	"brightbuddy/internal/modules/speech/dto"
)

type Usecase interface {
	// Speak queues text and returns without waiting for playback.
	Speak(ctx context.Context, input dto.SpeakInput) error
	Close() error
}
