package in

import (
	"context"

	"brightbuddy/internal/modules/routine/dto"
	routinein "brightbuddy/internal/modules/routine/port/in"
)

type CLIHandler struct {
	usecase routinein.Usecase
}

func NewCLIHandler(usecase routinein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) (dto.RoutineOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) SetDone(ctx context.Context, index int, done bool) (dto.RoutineOutput, error) {
	return h.usecase.SetTaskStatus(ctx, dto.SetTaskStatusInput{Index: index, Done: done})
}

func (h CLIHandler) Add(ctx context.Context, label string) (dto.RoutineOutput, error) {
	return h.usecase.EditDefinition(ctx, dto.EditInput{Op: dto.EditAdd, Label: label})
}

func (h CLIHandler) Edit(ctx context.Context, op dto.EditOp, index int) (dto.RoutineOutput, error) {
	return h.usecase.EditDefinition(ctx, dto.EditInput{Op: op, Index: index})
}

func (h CLIHandler) Export(ctx context.Context) ([]byte, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Import(ctx context.Context, data []byte) (dto.RoutineOutput, error) {
	return h.usecase.Import(ctx, data)
}
