package in

import (
	"context"

	"brightbuddy/internal/modules/routine/dto"
)

// Usecase methods that fail on a write still return the in-memory routine.
type Usecase interface {
	Load(ctx context.Context) (dto.RoutineOutput, error)
	SetTaskStatus(ctx context.Context, input dto.SetTaskStatusInput) (dto.RoutineOutput, error)
	// EditDefinition deletes today's stored progress.
	EditDefinition(ctx context.Context, input dto.EditInput) (dto.RoutineOutput, error)
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (dto.RoutineOutput, error)
}
