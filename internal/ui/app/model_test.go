package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	breathingdto "brightbuddy/internal/modules/breathing/dto"
	breathingin "brightbuddy/internal/modules/breathing/port/in"
	checkindto "brightbuddy/internal/modules/checkin/dto"
	parentdto "brightbuddy/internal/modules/parent/dto"
	routinedto "brightbuddy/internal/modules/routine/dto"
	summarydto "brightbuddy/internal/modules/summary/dto"
	apperrors "brightbuddy/internal/platform/errors"
	homeview "brightbuddy/internal/ui/views/home"
)

type fakeCheckin struct{}

func (fakeCheckin) Options() []checkindto.OptionOutput {
	return []checkindto.OptionOutput{{Feeling: "Happy"}, {Feeling: "Sad"}}
}
func (fakeCheckin) Record(_ context.Context, feeling string) (checkindto.FeelingOutput, error) {
	return checkindto.FeelingOutput{Feeling: feeling, Recorded: true}, nil
}
func (fakeCheckin) Current(context.Context) (checkindto.FeelingOutput, error) {
	return checkindto.FeelingOutput{}, nil
}

type fakeSummary struct{}

func (fakeSummary) Today(context.Context) (summarydto.SummaryOutput, error) {
	return summarydto.SummaryOutput{}, nil
}
func (fakeSummary) WriteReport(context.Context) (summarydto.ReportOutput, error) {
	return summarydto.ReportOutput{Path: "/tmp/report.md"}, nil
}

type fakeSession struct {
	mu      sync.Mutex
	mode    string
	stopped bool
	updates chan breathingdto.StateOutput
}

func (s *fakeSession) Info() breathingdto.SessionInfo { return breathingdto.SessionInfo{Mode: s.mode} }
func (s *fakeSession) SelectMode(_ context.Context, mode string) (breathingdto.StateOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return breathingdto.StateOutput{Mode: mode, Phase: "in", Countdown: 4}, nil
}
func (s *fakeSession) State() breathingdto.StateOutput {
	return breathingdto.StateOutput{Mode: s.mode, Phase: "in", Countdown: 4}
}
func (s *fakeSession) Updates() <-chan breathingdto.StateOutput { return s.updates }
func (s *fakeSession) Pulse() float64                           { return 1 }
func (s *fakeSession) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		s.stopped = true
		close(s.updates)
	}
}

type fakeBreathing struct {
	opened []*fakeSession
}

func (b *fakeBreathing) Open(_ context.Context, mode string) (breathingin.Session, error) {
	if mode == "" {
		mode = "calm"
	}
	s := &fakeSession{mode: mode, updates: make(chan breathingdto.StateOutput, 1)}
	b.opened = append(b.opened, s)
	return s, nil
}

type fakeRoutine struct{}

func (fakeRoutine) List(context.Context) (routinedto.RoutineOutput, error) {
	return routinedto.RoutineOutput{}, nil
}
func (fakeRoutine) SetDone(context.Context, int, bool) (routinedto.RoutineOutput, error) {
	return routinedto.RoutineOutput{}, nil
}
func (fakeRoutine) Add(context.Context, string) (routinedto.RoutineOutput, error) {
	return routinedto.RoutineOutput{}, nil
}
func (fakeRoutine) Edit(context.Context, routinedto.EditOp, int) (routinedto.RoutineOutput, error) {
	return routinedto.RoutineOutput{}, nil
}

type fakeParent struct{}

func (fakeParent) HasPIN(context.Context) (bool, error)           { return true, nil }
func (fakeParent) SetupPIN(context.Context, string, string) error { return nil }
func (fakeParent) VerifyPIN(context.Context, string) error        { return nil }
func (fakeParent) LoadProfile(context.Context) (parentdto.ProfileOutput, error) {
	return parentdto.ProfileOutput{}, nil
}
func (fakeParent) SaveProfile(context.Context, parentdto.ProfileInput) (parentdto.ProfileOutput, error) {
	return parentdto.ProfileOutput{}, nil
}
func (fakeParent) ThemeColors() []string { return []string{"blue", "neutral"} }

func newTestModel(b *fakeBreathing) Model {
	return NewModel(fakeCheckin{}, fakeSummary{}, b, fakeRoutine{}, fakeParent{})
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

func TestCalmTabScopesBreathingSession(t *testing.T) {
	t.Parallel()
	b := &fakeBreathing{}
	m := newTestModel(b)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != tabCalm {
		t.Fatalf("expected calm tab, got %d", m.activeTab)
	}
	if cmd == nil {
		t.Fatalf("expected a command opening the session")
	}
	next, _ := m.Update(cmd())
	m = next.(Model)
	if len(b.opened) != 1 || !m.calmView.Active() {
		t.Fatalf("expected one running session, opened=%d", len(b.opened))
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != tabRoutine {
		t.Fatalf("expected routine tab, got %d", m.activeTab)
	}
	if !b.opened[0].stopped {
		t.Fatalf("expected the session to stop when the calm tab closes")
	}
	if m.calmView.Active() {
		t.Fatalf("calm view still reports an active session")
	}
}

func TestWriteFailureShowsDismissibleNotice(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeBreathing{})

	next, _ := m.Update(homeview.RecordedMsg{
		Feeling: checkindto.FeelingOutput{Feeling: "Happy", Recorded: true},
		Err:     fmt.Errorf("save feeling: %w", apperrors.ErrStorageWrite),
	})
	m = next.(Model)
	if !strings.Contains(m.notice, "not saved") {
		t.Fatalf("expected a not-saved notice, got %q", m.notice)
	}
	if m.homeView.Feeling().Feeling != "Happy" {
		t.Fatalf("expected the feeling to stay shown, got %q", m.homeView.Feeling().Feeling)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.notice != "" {
		t.Fatalf("expected esc to dismiss the notice, got %q", m.notice)
	}
}

func TestPaletteBreatheOpensCalmTab(t *testing.T) {
	t.Parallel()
	b := &fakeBreathing{}
	m := newTestModel(b)

	next, cmd := m.executePalette("breathe deep")
	m = next.(Model)
	if m.activeTab != tabCalm || cmd == nil {
		t.Fatalf("expected calm tab with an open command")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	if len(b.opened) != 1 || b.opened[0].mode != "deep" {
		t.Fatalf("expected a deep session, got %+v", b.opened)
	}

	next, _ = m.executePalette("breathe reset")
	m = next.(Model)
	if b.opened[0].mode != "reset" || len(b.opened) != 1 {
		t.Fatalf("expected the running session to switch mode")
	}
}

func TestUnknownPaletteCommand(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeBreathing{})
	next, _ := m.executePalette("fly away")
	if got := next.(Model).status; got != "unknown command: fly" {
		t.Fatalf("unexpected status %q", got)
	}
}
