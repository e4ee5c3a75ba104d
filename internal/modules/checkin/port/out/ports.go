package out

import (
	"context"

	"brightbuddy/internal/modules/checkin/domain"
)

// FeelingStore keeps the single most recent check-in.
type FeelingStore interface {
	// Load reports false when nothing usable is stored.
	Load(ctx context.Context) (domain.Feeling, bool, error)
	Save(ctx context.Context, feeling domain.Feeling) error
}

type Speaker interface {
	Speak(ctx context.Context, text string, rate, pitch float64) error
}
