package out

import (
	"context"

	"brightbuddy/internal/modules/speech/domain"
)

type Voice interface {
	Say(ctx context.Context, utterance domain.Utterance) error
	Close() error
}
