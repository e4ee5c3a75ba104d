package routine

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	routinedto "brightbuddy/internal/modules/routine/dto"
	"brightbuddy/internal/ui/theme"
)

type RoutinePort interface {
	List(ctx context.Context) (routinedto.RoutineOutput, error)
	SetDone(ctx context.Context, index int, done bool) (routinedto.RoutineOutput, error)
}

// LoadedMsg also carries toggles. On a write failure Routine still holds the
// in-memory state and Err explains why it was not saved.
type LoadedMsg struct {
	Routine routinedto.RoutineOutput
	Err     error
}

type Model struct {
	port    RoutinePort
	routine routinedto.RoutineOutput
	cursor  int
	width   int
	height  int
}

func New(port RoutinePort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.List(context.Background())
		return LoadedMsg{Routine: out, Err: err}
	}
}

func (m Model) SetDoneCmd(index int, done bool) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.SetDone(context.Background(), index, done)
		return LoadedMsg{Routine: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case LoadedMsg:
		if len(msg.Routine.Tasks) > 0 || msg.Err == nil {
			m.routine = msg.Routine
		}
		if m.cursor >= len(m.routine.Tasks) {
			m.cursor = max(len(m.routine.Tasks)-1, 0)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.routine.Tasks)-1 {
				m.cursor++
			}
		case " ", "enter", "x":
			if m.cursor < len(m.routine.Tasks) {
				task := m.routine.Tasks[m.cursor]
				return m, m.SetDoneCmd(task.Index, !task.Done)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("My Routine") + "  " + theme.Muted.Render(m.routine.Date) + "\n\n")
	if len(m.routine.Tasks) == 0 {
		sb.WriteString(theme.Muted.Render("No tasks yet. Ask a grown-up to add some."))
	}
	for i, task := range m.routine.Tasks {
		box := "[ ]"
		label := task.Label
		if task.Done {
			box = theme.Good.Render("[✓]")
			label = theme.Muted.Strikethrough(true).Render(label)
		}
		pointer := "  "
		if i == m.cursor {
			pointer = theme.Hot.Render("▸ ")
		}
		sb.WriteString(fmt.Sprintf("%s%s %d. %s\n", pointer, box, i+1, label))
	}
	sb.WriteString("\n" + m.progressBar(30) + fmt.Sprintf("  %d / %d\n", m.routine.CompletedCount, m.routine.Total))
	if m.routine.Total > 0 && m.routine.CompletedCount == m.routine.Total {
		sb.WriteString("\n" + theme.Good.Render("You finished everything today! 🎉") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓ move  space: done / not done"))
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}

func (m Model) progressBar(width int) string {
	filled := 0
	if m.routine.Total > 0 {
		filled = width * m.routine.CompletedCount / m.routine.Total
	}
	return theme.Good.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", width-filled))
}
