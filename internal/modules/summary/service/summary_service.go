package service

import (
	"context"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/summary/domain"
	summaryout "brightbuddy/internal/modules/summary/port/out"
	"brightbuddy/internal/platform/logging"
)

type SummaryService struct {
	feelings summaryout.FeelingSource
	routine  summaryout.RoutineSource
	reports  summaryout.ReportStore
	logger   hclog.Logger
}

func NewSummaryService(feelings summaryout.FeelingSource, routine summaryout.RoutineSource, reports summaryout.ReportStore, logger hclog.Logger) *SummaryService {
	return &SummaryService{feelings: feelings, routine: routine, reports: reports, logger: logging.OrNull(logger)}
}

// Today shows a missing or unreadable feeling as none rather than failing.
func (s *SummaryService) Today(ctx context.Context) (domain.Snapshot, error) {
	date, tasks, err := s.routine.Today(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load routine: %w", err)
	}
	feeling, ok, err := s.feelings.LastFeeling(ctx)
	if err != nil {
		s.logger.Warn("load feeling for summary", "error", err)
	}
	if err != nil || !ok {
		feeling = ""
	}
	return domain.NewSnapshot(date, feeling, tasks), nil
}

func (s *SummaryService) WriteReport(ctx context.Context) (domain.Snapshot, string, error) {
	snapshot, err := s.Today(ctx)
	if err != nil {
		return domain.Snapshot{}, "", err
	}
	path, err := s.reports.Save(ctx, snapshot)
	if err != nil {
		return snapshot, "", fmt.Errorf("write report: %w", err)
	}
	s.logger.Info("report written", "path", path, "state", string(snapshot.State))
	return snapshot, path, nil
}
