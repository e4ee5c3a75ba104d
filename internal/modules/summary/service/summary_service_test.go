package service

import (
	"context"
	"errors"
	"testing"

	"brightbuddy/internal/modules/summary/domain"
)

type stubFeelings struct {
	feeling string
	ok      bool
	err     error
}

func (s stubFeelings) LastFeeling(context.Context) (string, bool, error) {
	return s.feeling, s.ok, s.err
}

type stubRoutine struct {
	tasks []domain.Task
	err   error
}

func (s stubRoutine) Today(context.Context) (string, []domain.Task, error) {
	return "2026-05-01", s.tasks, s.err
}

type recordingReports struct {
	saved []domain.Snapshot
}

func (r *recordingReports) Save(_ context.Context, s domain.Snapshot) (string, error) {
	r.saved = append(r.saved, s)
	return "reports/2026/05/01.md", nil
}

func TestTodayCombinesFeelingAndRoutine(t *testing.T) {
	t.Parallel()
	svc := NewSummaryService(
		stubFeelings{feeling: "Sad", ok: true},
		stubRoutine{tasks: []domain.Task{{Label: "A", Done: true}, {Label: "B", Done: true}, {Label: "C"}}},
		&recordingReports{},
		nil,
	)
	got, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if got.Feeling != "Sad" || got.Completed != 2 || got.Total != 3 || got.State != domain.StateHalfway {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestTodayIgnoresFeelingErrors(t *testing.T) {
	t.Parallel()
	svc := NewSummaryService(stubFeelings{feeling: "Sad", ok: true, err: errors.New("boom")}, stubRoutine{}, &recordingReports{}, nil)
	got, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if got.Feeling != "" || got.State != domain.StateNotStarted {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}

func TestWriteReportSavesSnapshot(t *testing.T) {
	t.Parallel()
	reports := &recordingReports{}
	svc := NewSummaryService(stubFeelings{}, stubRoutine{tasks: []domain.Task{{Label: "A", Done: true}}}, reports, nil)
	snap, path, err := svc.WriteReport(context.Background())
	if err != nil {
		t.Fatalf("write report: %v", err)
	}
	if path != "reports/2026/05/01.md" || len(reports.saved) != 1 || snap.State != domain.StateAllDone {
		t.Fatalf("unexpected report %q %+v", path, reports.saved)
	}

	failing := NewSummaryService(stubFeelings{}, stubRoutine{err: errors.New("locked")}, reports, nil)
	if _, _, err := failing.WriteReport(context.Background()); err == nil {
		t.Fatalf("expected routine error")
	}
}
