package usecase

import (
	"context"
	"fmt"

	"brightbuddy/internal/modules/routine/dto"
	routinein "brightbuddy/internal/modules/routine/port/in"
	"brightbuddy/internal/modules/routine/service"
	apperrors "brightbuddy/internal/platform/errors"
)

type Interactor struct {
	tracker *service.Tracker
}

func NewInteractor(tracker *service.Tracker) routinein.Usecase {
	return &Interactor{tracker: tracker}
}

func (i *Interactor) Load(ctx context.Context) (dto.RoutineOutput, error) {
	return toOutput(i.tracker.Load(ctx)), nil
}

func (i *Interactor) SetTaskStatus(ctx context.Context, input dto.SetTaskStatusInput) (dto.RoutineOutput, error) {
	view, err := i.tracker.SetTaskStatus(ctx, input.Index, input.Done)
	return toOutput(view), err
}

func (i *Interactor) EditDefinition(ctx context.Context, input dto.EditInput) (dto.RoutineOutput, error) {
	var (
		view service.View
		err  error
	)
	switch input.Op {
	case dto.EditAdd:
		view, err = i.tracker.Add(ctx, input.Label)
	case dto.EditRemove:
		view, err = i.tracker.Remove(ctx, input.Index)
	case dto.EditMoveUp:
		view, err = i.tracker.MoveUp(ctx, input.Index)
	case dto.EditMoveDown:
		view, err = i.tracker.MoveDown(ctx, input.Index)
	default:
		return dto.RoutineOutput{}, fmt.Errorf("%w: unknown edit %q", apperrors.ErrInvalidInput, input.Op)
	}
	return toOutput(view), err
}

func (i *Interactor) Export(ctx context.Context) ([]byte, error) {
	return i.tracker.Export(ctx)
}

func (i *Interactor) Import(ctx context.Context, data []byte) (dto.RoutineOutput, error) {
	view, err := i.tracker.Import(ctx, data)
	return toOutput(view), err
}

func toOutput(view service.View) dto.RoutineOutput {
	tasks := make([]dto.TaskOutput, 0, len(view.Definition))
	for idx, label := range view.Definition {
		done := idx < len(view.Progress.Items) && view.Progress.Items[idx]
		tasks = append(tasks, dto.TaskOutput{Index: idx, Label: label, Done: done})
	}
	return dto.RoutineOutput{
		Date:           view.Progress.Date,
		Tasks:          tasks,
		CompletedCount: view.Progress.CompletedCount,
		Total:          view.Progress.Total,
	}
}
