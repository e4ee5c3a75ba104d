package parent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	parentdto "brightbuddy/internal/modules/parent/dto"
	routinedto "brightbuddy/internal/modules/routine/dto"
	summarydto "brightbuddy/internal/modules/summary/dto"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/ui/theme"
)

type ParentPort interface {
	HasPIN(ctx context.Context) (bool, error)
	SetupPIN(ctx context.Context, pin, confirm string) error
	VerifyPIN(ctx context.Context, pin string) error
	LoadProfile(ctx context.Context) (parentdto.ProfileOutput, error)
	SaveProfile(ctx context.Context, input parentdto.ProfileInput) (parentdto.ProfileOutput, error)
	ThemeColors() []string
}

type EditorPort interface {
	List(ctx context.Context) (routinedto.RoutineOutput, error)
	Add(ctx context.Context, label string) (routinedto.RoutineOutput, error)
	Edit(ctx context.Context, op routinedto.EditOp, index int) (routinedto.RoutineOutput, error)
}

type ReportPort interface {
	WriteReport(ctx context.Context) (summarydto.ReportOutput, error)
}

// RoutineChangedMsg tells other tabs the definition changed and progress was reset.
type RoutineChangedMsg struct{}

type mode int

const (
	modeChecking mode = iota
	modeSetup
	modeLogin
	modeEditor
	modeAddTask
	modeRename
)

type gateMsg struct {
	hasPIN bool
	err    error
}

type unlockedMsg struct {
	profile parentdto.ProfileOutput
	routine routinedto.RoutineOutput
	err     error
}

type routineMsg struct {
	routine routinedto.RoutineOutput
	err     error
}

type profileMsg struct {
	profile parentdto.ProfileOutput
	err     error
}

type reportMsg struct {
	report summarydto.ReportOutput
	err    error
}

type Model struct {
	parent  ParentPort
	editor  EditorPort
	reports ReportPort

	mode    mode
	pin     textinput.Model
	confirm textinput.Model
	text    textinput.Model
	focus   int

	profile parentdto.ProfileOutput
	routine routinedto.RoutineOutput
	cursor  int
	notice  string
	width   int
	height  int
}

func New(parent ParentPort, editor EditorPort, reports ReportPort) Model {
	return Model{
		parent:  parent,
		editor:  editor,
		reports: reports,
		pin:     pinInput("PIN"),
		confirm: pinInput("Confirm PIN"),
		text:    textinput.New(),
	}
}

func pinInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 4
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// Unlocked reports whether the editor is showing.
func (m Model) Unlocked() bool { return m.mode >= modeEditor }

// Typing reports whether a text field has focus, so global keys must yield.
func (m Model) Typing() bool {
	switch m.mode {
	case modeSetup, modeLogin, modeAddTask, modeRename:
		return true
	}
	return false
}

// Lock returns to the PIN gate; the next Enter asks for the PIN again.
func (m *Model) Lock() {
	m.mode = modeChecking
	m.pin.SetValue("")
	m.confirm.SetValue("")
	m.text.SetValue("")
	m.pin.Blur()
	m.confirm.Blur()
	m.text.Blur()
	m.notice = ""
}

// Enter shows the gate: PIN setup when none exists, login otherwise.
func (m *Model) Enter() tea.Cmd {
	m.Lock()
	parent := m.parent
	return func() tea.Msg {
		ok, err := parent.HasPIN(context.Background())
		return gateMsg{hasPIN: ok, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case gateMsg:
		if msg.err != nil {
			m.notice = "could not read PIN: " + msg.err.Error()
		}
		m.focus = 0
		if msg.hasPIN {
			m.mode = modeLogin
		} else {
			m.mode = modeSetup
		}
		cmd := m.pin.Focus()
		return m, cmd

	case unlockedMsg:
		if msg.err != nil {
			m.pin.SetValue("")
			m.confirm.SetValue("")
			m.focus = 0
			m.notice = pinMessage(msg.err)
			if errors.Is(msg.err, apperrors.ErrNoPIN) {
				m.mode = modeSetup
			}
			m.confirm.Blur()
			cmd := m.pin.Focus()
			return m, cmd
		}
		m.pin.Blur()
		m.confirm.Blur()
		m.mode = modeEditor
		m.profile, m.routine = msg.profile, msg.routine
		m.notice = "Unlocked. Changes here reset today's checklist."
		return m, nil

	case routineMsg:
		m.routine = msg.routine
		if m.cursor >= len(m.routine.Tasks) {
			m.cursor = max(len(m.routine.Tasks)-1, 0)
		}
		if msg.err != nil {
			m.notice = msg.err.Error()
		} else {
			m.notice = "Routine saved."
		}
		return m, func() tea.Msg { return RoutineChangedMsg{} }

	case profileMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
		} else {
			m.notice = "Profile saved."
		}
		if msg.profile.ThemeColor != "" {
			m.profile = msg.profile
		}
		return m, nil

	case reportMsg:
		if msg.err != nil {
			m.notice = "report: " + msg.err.Error()
		} else {
			m.notice = "Report written to " + msg.report.Path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeSetup, modeLogin:
		return m.handleGateKey(msg)
	case modeAddTask, modeRename:
		return m.handleTextKey(msg)
	case modeEditor:
		return m.handleEditorKey(msg)
	}
	return m, nil
}

func (m Model) handleGateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		pin, confirm := m.pin.Value(), m.confirm.Value()
		if m.mode == modeSetup && m.focus == 0 {
			m.focus = 1
			m.pin.Blur()
			cmd := m.confirm.Focus()
			return m, cmd
		}
		return m, m.unlockCmd(m.mode == modeSetup, pin, confirm)
	case "shift+tab", "up":
		if m.mode == modeSetup && m.focus == 1 {
			m.focus = 0
			m.confirm.Blur()
			cmd := m.pin.Focus()
			return m, cmd
		}
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.pin, cmd = m.pin.Update(msg)
	} else {
		m.confirm, cmd = m.confirm.Update(msg)
	}
	return m, cmd
}

func (m Model) handleTextKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeEditor
		m.text.Blur()
		return m, nil
	case "enter":
		value := m.text.Value()
		current := m.mode
		m.mode = modeEditor
		m.text.Blur()
		if current == modeAddTask {
			return m, m.addCmd(value)
		}
		input := m.profileInput()
		input.Name = value
		return m, m.saveProfileCmd(input)
	}
	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	return m, cmd
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.routine.Tasks)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAddTask
		m.text.SetValue("")
		m.text.Placeholder = "New task"
		cmd := m.text.Focus()
		return m, cmd
	case "n":
		m.mode = modeRename
		m.text.SetValue(m.profile.Name)
		m.text.Placeholder = "Child's name"
		cmd := m.text.Focus()
		return m, cmd
	case "d", "delete":
		if len(m.routine.Tasks) > 0 {
			return m, m.editCmd(routinedto.EditRemove, m.cursor)
		}
	case "K", "shift+up":
		if m.cursor > 0 {
			m.cursor--
			return m, m.editCmd(routinedto.EditMoveUp, m.cursor+1)
		}
	case "J", "shift+down":
		if m.cursor < len(m.routine.Tasks)-1 {
			m.cursor++
			return m, m.editCmd(routinedto.EditMoveDown, m.cursor-1)
		}
	case "t":
		input := m.profileInput()
		input.ThemeColor = nextColor(m.parent.ThemeColors(), m.profile.ThemeColor)
		return m, m.saveProfileCmd(input)
	case "w":
		return m, m.reportCmd()
	case "L":
		cmd := m.Enter()
		return m, cmd
	}
	return m, nil
}

func nextColor(colors []string, current string) string {
	if len(colors) == 0 {
		return current
	}
	for i, c := range colors {
		if c == current {
			return colors[(i+1)%len(colors)]
		}
	}
	return colors[0]
}

func (m Model) profileInput() parentdto.ProfileInput {
	return parentdto.ProfileInput{
		Name:       m.profile.Name,
		Age:        m.profile.Age,
		Sex:        m.profile.Sex,
		ThemeColor: m.profile.ThemeColor,
		Birthday:   m.profile.Birthday,
	}
}

func pinMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNoPIN):
		return "No PIN set yet. You need to create one first."
	case errors.Is(err, apperrors.ErrIncorrectPIN):
		return "Incorrect PIN"
	case errors.Is(err, apperrors.ErrPINMismatch):
		return "PINs do not match"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "PIN must be 4 digits"
	default:
		return err.Error()
	}
}

func (m Model) unlockCmd(setup bool, pin, confirm string) tea.Cmd {
	parent, editor := m.parent, m.editor
	return func() tea.Msg {
		ctx := context.Background()
		if setup {
			if err := parent.SetupPIN(ctx, pin, confirm); err != nil {
				return unlockedMsg{err: err}
			}
		} else if err := parent.VerifyPIN(ctx, pin); err != nil {
			return unlockedMsg{err: err}
		}
		profile, err := parent.LoadProfile(ctx)
		if err != nil {
			return unlockedMsg{err: err}
		}
		routine, err := editor.List(ctx)
		return unlockedMsg{profile: profile, routine: routine, err: err}
	}
}

func (m Model) addCmd(label string) tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		out, err := editor.Add(context.Background(), label)
		return routineMsg{routine: out, err: err}
	}
}

func (m Model) editCmd(op routinedto.EditOp, index int) tea.Cmd {
	editor := m.editor
	return func() tea.Msg {
		out, err := editor.Edit(context.Background(), op, index)
		return routineMsg{routine: out, err: err}
	}
}

func (m Model) saveProfileCmd(input parentdto.ProfileInput) tea.Cmd {
	parent := m.parent
	return func() tea.Msg {
		out, err := parent.SaveProfile(context.Background(), input)
		return profileMsg{profile: out, err: err}
	}
}

func (m Model) reportCmd() tea.Cmd {
	reports := m.reports
	return func() tea.Msg {
		if reports == nil {
			return reportMsg{err: fmt.Errorf("reports are not configured")}
		}
		out, err := reports.WriteReport(context.Background())
		return reportMsg{report: out, err: err}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	switch m.mode {
	case modeChecking:
		sb.WriteString(theme.Muted.Render("Checking parent lock…"))
	case modeSetup:
		sb.WriteString(theme.Title.Render("Create a parent PIN") + "\n\n")
		sb.WriteString(m.pin.View() + "\n" + m.confirm.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("enter: next / save"))
	case modeLogin:
		sb.WriteString(theme.Title.Render("Parents only 🔒") + "\n\n")
		sb.WriteString(m.pin.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("enter: unlock"))
	default:
		sb.WriteString(m.editorView())
	}
	if m.notice != "" {
		sb.WriteString("\n\n" + theme.Muted.Render(m.notice))
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}

func (m Model) editorView() string {
	var sb strings.Builder
	th := m.profile.Theme
	name := m.profile.Name
	if name == "" {
		name = "(no name)"
	}
	header := fmt.Sprintf("%s  theme: %s", name, m.profile.ThemeColor)
	if th.Background != "" {
		header = theme.Card(th.Background, th.Button).Foreground(lipgloss.Color(th.Title)).Padding(0, 1).Render(header)
	}
	sb.WriteString(theme.Title.Render("Parent settings") + "\n" + header + "\n\n")
	sb.WriteString(theme.Title.Render("Routine") + "\n")
	for i, task := range m.routine.Tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = theme.Hot.Render("▸ ")
		}
		sb.WriteString(fmt.Sprintf("%s%d. %s\n", pointer, i+1, task.Label))
	}
	if m.mode == modeAddTask || m.mode == modeRename {
		sb.WriteString("\n" + m.text.View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("a add  d delete  K/J move  n name  t theme  w report  L lock"))
	return sb.String()
}
