package usecase

import (
	"context"

	"brightbuddy/internal/modules/summary/domain"
	"brightbuddy/internal/modules/summary/dto"
	summaryin "brightbuddy/internal/modules/summary/port/in"
	"brightbuddy/internal/modules/summary/service"
)

type Interactor struct {
	svc *service.SummaryService
}

func NewInteractor(svc *service.SummaryService) summaryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Today(ctx context.Context) (dto.SummaryOutput, error) {
	snapshot, err := i.svc.Today(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return toOutput(snapshot), nil
}

func (i *Interactor) WriteReport(ctx context.Context) (dto.ReportOutput, error) {
	snapshot, path, err := i.svc.WriteReport(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	return dto.ReportOutput{Path: path, Summary: toOutput(snapshot)}, nil
}

func toOutput(s domain.Snapshot) dto.SummaryOutput {
	tasks := make([]dto.TaskOutput, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		tasks = append(tasks, dto.TaskOutput{Label: t.Label, Done: t.Done})
	}
	return dto.SummaryOutput{
		Date:      s.Date,
		Feeling:   s.Feeling,
		Completed: s.Completed,
		Total:     s.Total,
		State:     string(s.State),
		Message:   s.State.Message(),
		Tasks:     tasks,
	}
}
