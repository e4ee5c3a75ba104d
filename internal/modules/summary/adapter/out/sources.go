package out

import (
	"context"

	checkinin "brightbuddy/internal/modules/checkin/port/in"
	routinein "brightbuddy/internal/modules/routine/port/in"
	"brightbuddy/internal/modules/summary/domain"
	summaryout "brightbuddy/internal/modules/summary/port/out"
)

type CheckinFeelingSource struct {
	checkin checkinin.Usecase
}

func NewCheckinFeelingSource(checkin checkinin.Usecase) summaryout.FeelingSource {
	return &CheckinFeelingSource{checkin: checkin}
}

func (a *CheckinFeelingSource) LastFeeling(ctx context.Context) (string, bool, error) {
	current, err := a.checkin.Current(ctx)
	if err != nil {
		return "", false, err
	}
	return current.Feeling, current.Recorded, nil
}

type RoutineTaskSource struct {
	routine routinein.Usecase
}

func NewRoutineTaskSource(routine routinein.Usecase) summaryout.RoutineSource {
	return &RoutineTaskSource{routine: routine}
}

func (a *RoutineTaskSource) Today(ctx context.Context) (string, []domain.Task, error) {
	out, err := a.routine.Load(ctx)
	if err != nil {
		return "", nil, err
	}
	tasks := make([]domain.Task, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, domain.Task{Label: t.Label, Done: t.Done})
	}
	return out.Date, tasks, nil
}
