package home

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	checkindto "brightbuddy/internal/modules/checkin/dto"
	summarydto "brightbuddy/internal/modules/summary/dto"
	"brightbuddy/internal/ui/theme"
)

type CheckinPort interface {
	Options() []checkindto.OptionOutput
	Record(ctx context.Context, feeling string) (checkindto.FeelingOutput, error)
	Current(ctx context.Context) (checkindto.FeelingOutput, error)
}

type SummaryPort interface {
	Today(ctx context.Context) (summarydto.SummaryOutput, error)
}

// RecordedMsg reports a check-in. Err may be set while Feeling still holds the
// recorded value, which means it was kept in memory but not saved.
type RecordedMsg struct {
	Feeling checkindto.FeelingOutput
	Err     error
}

type LoadedMsg struct {
	Feeling checkindto.FeelingOutput
	Summary summarydto.SummaryOutput
	Err     error
}

type Model struct {
	checkin CheckinPort
	summary SummaryPort
	options []checkindto.OptionOutput
	cursor  int
	feeling checkindto.FeelingOutput
	today   summarydto.SummaryOutput
	width   int
	height  int
}

func New(checkin CheckinPort, summary SummaryPort) Model {
	return Model{checkin: checkin, summary: summary, options: checkin.Options()}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refreshes the feeling card and the routine summary.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		feeling, err := m.checkin.Current(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		today, err := m.summary.Today(ctx)
		return LoadedMsg{Feeling: feeling, Summary: today, Err: err}
	}
}

// RecordCmd records a feeling chosen elsewhere, such as the palette.
func (m Model) RecordCmd(feeling string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.checkin.Record(context.Background(), feeling)
		return RecordedMsg{Feeling: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case LoadedMsg:
		if msg.Err == nil {
			m.feeling, m.today = msg.Feeling, msg.Summary
		}
	case RecordedMsg:
		if msg.Feeling.Recorded {
			m.feeling = msg.Feeling
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter", " ":
			if len(m.options) > 0 {
				return m, m.RecordCmd(m.options[m.cursor].Feeling)
			}
		}
	}
	return m, nil
}

// Feeling is the check-in shown on the card, empty when none.
func (m Model) Feeling() checkindto.FeelingOutput { return m.feeling }

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Hi there 😊") + "\n")
	sb.WriteString(theme.Muted.Render("You're safe here. Let’s take today gently.") + "\n\n")
	sb.WriteString(theme.Title.Render("How are you feeling?") + "\n\n")

	tiles := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		style := theme.Card(opt.Color, opt.Color).Padding(0, 1)
		if i == m.cursor {
			style = style.BorderForeground(theme.Indigo).Bold(true)
		}
		tiles = append(tiles, style.Render(opt.Emoji+"\n"+opt.Feeling))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...) + "\n\n")

	if m.feeling.Recorded {
		card := theme.Card(m.feeling.Color, m.feeling.Theme.Accent).
			Render(fmt.Sprintf("You have said you feel %s.\nThat’s okay. I’m here with you 💛", m.feeling.Feeling))
		sb.WriteString(card + "\n\n")
	}

	sb.WriteString(theme.Title.Render("My day") + "  ")
	sb.WriteString(fmt.Sprintf("%d of %d done  ", m.today.Completed, m.today.Total))
	sb.WriteString(theme.Good.Render(m.today.Message) + "\n")
	sb.WriteString("\n" + theme.Muted.Render("←/→ choose  enter: check in  tab: calm corner"))
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}
