package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	breathingin "brightbuddy/internal/modules/breathing/port/in"
	checkindto "brightbuddy/internal/modules/checkin/dto"
	parentdto "brightbuddy/internal/modules/parent/dto"
	routinedto "brightbuddy/internal/modules/routine/dto"
	summarydto "brightbuddy/internal/modules/summary/dto"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/ui/components"
	"brightbuddy/internal/ui/theme"
	calmview "brightbuddy/internal/ui/views/calm"
	homeview "brightbuddy/internal/ui/views/home"
	parentview "brightbuddy/internal/ui/views/parent"
	routineview "brightbuddy/internal/ui/views/routine"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type checkinPort interface {
	Options() []checkindto.OptionOutput
	Record(ctx context.Context, feeling string) (checkindto.FeelingOutput, error)
	Current(ctx context.Context) (checkindto.FeelingOutput, error)
}

type summaryPort interface {
	Today(ctx context.Context) (summarydto.SummaryOutput, error)
	WriteReport(ctx context.Context) (summarydto.ReportOutput, error)
}

type breathingPort interface {
	Open(ctx context.Context, mode string) (breathingin.Session, error)
}

type routinePort interface {
	List(ctx context.Context) (routinedto.RoutineOutput, error)
	SetDone(ctx context.Context, index int, done bool) (routinedto.RoutineOutput, error)
	Add(ctx context.Context, label string) (routinedto.RoutineOutput, error)
	Edit(ctx context.Context, op routinedto.EditOp, index int) (routinedto.RoutineOutput, error)
}

type parentPort interface {
	HasPIN(ctx context.Context) (bool, error)
	SetupPIN(ctx context.Context, pin, confirm string) error
	VerifyPIN(ctx context.Context, pin string) error
	LoadProfile(ctx context.Context) (parentdto.ProfileOutput, error)
	SaveProfile(ctx context.Context, input parentdto.ProfileInput) (parentdto.ProfileOutput, error)
	ThemeColors() []string
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabCalm
	tabRoutine
	tabParent
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "Calm", "Routine", "Parent",
}

// ─── async messages ───────────────────────────────────────────────────────────

// DayChangedMsg is sent by the midnight job so views pick up the new day.
type DayChangedMsg struct{}

type reportWrittenMsg struct {
	out summarydto.ReportOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Dismiss key.Binding
	Feel    key.Binding
	Mode    key.Binding
	Toggle  key.Binding
	Edit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss notice")),
		Feel:    key.NewBinding(key.WithKeys("left", "right", "enter"), key.WithHelp("←/→ enter", "pick a feeling")),
		Mode:    key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1/2/3", "calm/deep/reset")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "tick a task")),
		Edit:    key.NewBinding(key.WithKeys("a", "d", "K", "J"), key.WithHelp("a/d/K/J", "edit routine")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Feel, k.Mode},
		{k.Toggle, k.Edit},
		{k.Help, k.Palette, k.Dismiss, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the status notice,
// the help overlay, and the command palette. Business logic lives behind the
// ports; rendering is delegated to sub-views.
type Model struct {
	summary summaryPort

	homeView    homeview.Model
	calmView    calmview.Model
	routineView routineview.Model
	parentView  parentview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	notice    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	checkin checkinPort,
	summary summaryPort,
	breathing breathingPort,
	routine routinePort,
	parent parentPort,
) Model {
	return Model{
		summary:     summary,
		homeView:    homeview.New(checkinPortBridge{p: checkin}, summary),
		calmView:    calmview.New(breathing, checkinPortBridge{p: checkin}),
		routineView: routineview.New(routine),
		parentView:  parentview.New(parent, routine, summary),
		activeTab:   tabHome,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.homeView.Init(),
		m.routineView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case DayChangedMsg:
		m.status = "good morning, it's a new day"
		return m, tea.Batch(m.homeView.Reload(), m.routineView.Reload())

	case parentview.RoutineChangedMsg:
		return m, tea.Batch(m.homeView.Reload(), m.routineView.Reload())

	case homeview.RecordedMsg:
		if msg.Err != nil {
			m.notice = noticeFor("feeling", msg.Err)
		} else {
			m.status = "feeling saved: " + msg.Feeling.Feeling
		}

	case routineview.LoadedMsg:
		if msg.Err != nil {
			m.notice = noticeFor("checklist", msg.Err)
		}

	case reportWrittenMsg:
		if msg.err != nil {
			m.notice = noticeFor("report", msg.err)
		} else {
			m.status = "report written: " + msg.out.Path
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the parent tab while one of its fields has focus.
		if m.activeTab == tabParent && m.parentView.Typing() && msg.String() != "ctrl+c" {
			var cmd tea.Cmd
			m.parentView, cmd = m.parentView.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.calmView.Leave()
			return m, tea.Quit
		case "tab":
			cmd := m.switchTab((m.activeTab + 1) % tabCount)
			return m, cmd
		case "shift+tab":
			cmd := m.switchTab((m.activeTab + tabCount - 1) % tabCount)
			return m, cmd
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		case "esc":
			if m.notice != "" {
				m.notice = ""
				return m, nil
			}
		}
		cmd := m.updateActive(msg)
		return m, cmd
	}

	// Everything else may belong to any sub-view; each ignores foreign messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.homeView, cmd = m.homeView.Update(msg)
	cmds = append(cmds, cmd)
	m.calmView, cmd = m.calmView.Update(msg)
	cmds = append(cmds, cmd)
	m.routineView, cmd = m.routineView.Update(msg)
	cmds = append(cmds, cmd)
	m.parentView, cmd = m.parentView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) updateActive(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case tabCalm:
		m.calmView, cmd = m.calmView.Update(msg)
	case tabRoutine:
		m.routineView, cmd = m.routineView.Update(msg)
	case tabParent:
		m.parentView, cmd = m.parentView.Update(msg)
	}
	return cmd
}

// switchTab runs the leave hook of the current tab and the enter hook of the
// next one. The breathing session lives only while the Calm tab is shown.
func (m *Model) switchTab(next tabID) tea.Cmd {
	if next == m.activeTab {
		return nil
	}
	switch m.activeTab {
	case tabCalm:
		m.calmView.Leave()
	case tabParent:
		m.parentView.Lock()
	}
	m.activeTab = next
	switch next {
	case tabHome:
		return m.homeView.Reload()
	case tabCalm:
		return m.calmView.Enter("")
	case tabRoutine:
		return m.routineView.Reload()
	case tabParent:
		return m.parentView.Enter()
	}
	return nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabCalm:
		return m.calmView.View()
	case tabRoutine:
		return m.routineView.View()
	case tabParent:
		return m.parentView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "BrightBuddy  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Cloud).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.notice != "" {
		left = theme.Notice.Render(m.notice) + "  " + theme.Muted.Render("esc to dismiss")
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Cloud).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "feel":
		if len(parts) < 2 {
			m.status = "usage: feel <happy|okay|sad|angry|overwhelmed>"
			return m, nil
		}
		return m, m.homeView.RecordCmd(parts[1])

	case "breathe":
		mode := ""
		if len(parts) >= 2 {
			mode = parts[1]
		}
		if m.activeTab == tabCalm && m.calmView.Active() && mode != "" {
			if err := m.calmView.SelectMode(mode); err != nil {
				m.notice = noticeFor("breathing", err)
			}
			return m, nil
		}
		if m.activeTab == tabParent {
			m.parentView.Lock()
		}
		m.activeTab = tabCalm
		cmd := m.calmView.Enter(mode)
		return m, cmd

	case "done", "undo":
		if len(parts) < 2 {
			m.status = "usage: " + parts[0] + " <task number>"
			return m, nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 1 {
			m.status = "invalid task number"
			return m, nil
		}
		return m, m.routineView.SetDoneCmd(n-1, parts[0] == "done")

	case "report":
		return m, m.writeReportCmd()

	case "lock":
		if m.activeTab == tabParent {
			cmd := m.parentView.Enter()
			return m, cmd
		}
		m.parentView.Lock()
		m.status = "parent settings locked"
		return m, nil

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// noticeFor words an error for the status bar. A failed write keeps what the
// child sees, so the notice says the change was not saved rather than lost.
func noticeFor(what string, err error) string {
	switch {
	case errors.Is(err, apperrors.ErrStorageWrite):
		return fmt.Sprintf("%s was not saved; it will stay until the app closes", what)
	case errors.Is(err, apperrors.ErrInvalidInput):
		return fmt.Sprintf("%s: %v", what, err)
	default:
		return fmt.Sprintf("%s failed: %v", what, err)
	}
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.calmView, _ = m.calmView.Update(sz)
	m.routineView, _ = m.routineView.Update(sz)
	m.parentView, _ = m.parentView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) writeReportCmd() tea.Cmd {
	summary := m.summary
	return func() tea.Msg {
		if summary == nil {
			return reportWrittenMsg{err: fmt.Errorf("reports are not configured")}
		}
		out, err := summary.WriteReport(context.Background())
		return reportWrittenMsg{out: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// A bridge narrows a broad port to the interface a sub-view needs.

type checkinPortBridge struct{ p checkinPort }

func (b checkinPortBridge) Options() []checkindto.OptionOutput { return b.p.Options() }

func (b checkinPortBridge) Record(ctx context.Context, feeling string) (checkindto.FeelingOutput, error) {
	return b.p.Record(ctx, feeling)
}

func (b checkinPortBridge) Current(ctx context.Context) (checkindto.FeelingOutput, error) {
	return b.p.Current(ctx)
}
