package out

import (
	"context"

	"brightbuddy/internal/modules/summary/domain"
)

type FeelingSource interface {
	LastFeeling(ctx context.Context) (string, bool, error)
}

// RoutineSource returns the routine date and its tasks with today's flags.
type RoutineSource interface {
	Today(ctx context.Context) (string, []domain.Task, error)
}

type ReportStore interface {
	Save(ctx context.Context, snapshot domain.Snapshot) (string, error)
}
