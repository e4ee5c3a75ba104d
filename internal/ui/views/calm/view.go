package calm

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	breathingdto "brightbuddy/internal/modules/breathing/dto"
	breathingin "brightbuddy/internal/modules/breathing/port/in"
	checkindto "brightbuddy/internal/modules/checkin/dto"
	"brightbuddy/internal/ui/theme"
)

const pulseFrame = 100 * time.Millisecond

var modes = []string{"calm", "deep", "reset"}

type BreathingPort interface {
	Open(ctx context.Context, mode string) (breathingin.Session, error)
}

type FeelingPort interface {
	Current(ctx context.Context) (checkindto.FeelingOutput, error)
}

// Messages carry the generation of the session they belong to so that
// anything arriving after Leave is dropped.
type openedMsg struct {
	gen     int
	session breathingin.Session
	theme   checkindto.ThemeOutput
	err     error
}

type stateMsg struct {
	gen   int
	state breathingdto.StateOutput
	ok    bool
}

type pulseMsg struct{ gen int }

type Model struct {
	breathing BreathingPort
	feelings  FeelingPort

	gen     int
	session breathingin.Session
	state   breathingdto.StateOutput
	theme   checkindto.ThemeOutput
	pulse   float64
	err     error
	width   int
	height  int
}

func New(breathing BreathingPort, feelings FeelingPort) Model {
	return Model{breathing: breathing, feelings: feelings, pulse: 1}
}

// Active reports whether a session is running.
func (m Model) Active() bool { return m.session != nil }

// Enter opens a session in the mode chosen by the last check-in, or in mode when set.
func (m *Model) Enter(mode string) tea.Cmd {
	m.stop()
	m.gen++
	gen, breathing, feelings := m.gen, m.breathing, m.feelings
	return func() tea.Msg {
		ctx := context.Background()
		var th checkindto.ThemeOutput
		if feelings != nil {
			if current, err := feelings.Current(ctx); err == nil {
				th = current.Theme
			}
		}
		sess, err := breathing.Open(ctx, mode)
		return openedMsg{gen: gen, session: sess, theme: th, err: err}
	}
}

// Leave stops the running session. Safe to call when none is running.
func (m *Model) Leave() {
	m.stop()
	m.gen++
}

func (m *Model) stop() {
	if m.session != nil {
		m.session.Stop()
		m.session = nil
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case openedMsg:
		if msg.gen != m.gen {
			if msg.session != nil {
				msg.session.Stop()
			}
			return m, nil
		}
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.session = msg.session
		m.theme = msg.theme
		m.state = msg.session.State()
		m.pulse = msg.session.Pulse()
		return m, tea.Batch(waitForState(m.gen, m.session), pulseTick(m.gen))

	case stateMsg:
		if msg.gen != m.gen || !msg.ok || m.session == nil {
			return m, nil
		}
		m.state = msg.state
		return m, waitForState(m.gen, m.session)

	case pulseMsg:
		if msg.gen != m.gen || m.session == nil {
			return m, nil
		}
		m.pulse = m.session.Pulse()
		return m, pulseTick(m.gen)

	case tea.KeyMsg:
		if m.session == nil {
			return m, nil
		}
		idx := -1
		switch msg.String() {
		case "1", "c":
			idx = 0
		case "2", "d":
			idx = 1
		case "3", "r":
			idx = 2
		}
		if idx >= 0 {
			m.err = m.SelectMode(modes[idx])
		}
	}
	return m, nil
}

// SelectMode switches the running session, as the palette's breathe command does.
func (m *Model) SelectMode(mode string) error {
	if m.session == nil {
		return fmt.Errorf("no breathing session is running")
	}
	state, err := m.session.SelectMode(context.Background(), mode)
	if err != nil {
		return err
	}
	m.state = state
	m.pulse = m.session.Pulse()
	return nil
}

func waitForState(gen int, sess breathingin.Session) tea.Cmd {
	updates := sess.Updates()
	return func() tea.Msg {
		state, ok := <-updates
		return stateMsg{gen: gen, state: state, ok: ok}
	}
}

func pulseTick(gen int) tea.Cmd {
	return tea.Tick(pulseFrame, func(time.Time) tea.Msg { return pulseMsg{gen: gen} })
}

func (m Model) View() string {
	background, accent, message := "#EAF6FF", "#2D4A8C", "Let’s slow down together"
	if m.theme.Background != "" {
		background, accent, message = m.theme.Background, m.theme.Accent, m.theme.Message
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Calm corner") + "  " + theme.Muted.Render(message) + "\n\n")

	if m.err != nil {
		sb.WriteString(theme.Notice.Render(m.err.Error()) + "\n\n")
	}
	if m.session == nil {
		sb.WriteString(theme.Muted.Render("Getting ready…"))
		return sb.String()
	}

	tabs := make([]string, len(modes))
	for i, mode := range modes {
		label := fmt.Sprintf("%d %s", i+1, mode)
		if mode == m.state.Mode {
			tabs[i] = theme.Hot.Render(label)
		} else {
			tabs[i] = theme.Muted.Render(label)
		}
	}
	sb.WriteString(strings.Join(tabs, "   ") + "\n\n")

	size := int(8 * m.pulse)
	bubble := lipgloss.NewStyle().
		Width(size*2).
		Height(size/2).
		Background(lipgloss.Color(accent)).
		Foreground(lipgloss.Color(background)).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Render(fmt.Sprintf("%d", m.state.Countdown))
	sb.WriteString(lipgloss.PlaceHorizontal(40, lipgloss.Center, bubble) + "\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(40, lipgloss.Center, theme.Title.Render(m.state.Cue)) + "\n\n")
	sb.WriteString(theme.Muted.Render("1/2/3 or c/d/r: change pace"))

	return theme.Card(background, accent).Width(max(m.width-4, 44)).Render(sb.String())
}
