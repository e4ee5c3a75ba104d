package theme

import "github.com/charmbracelet/lipgloss"

// Soft pastel palette; dark text on light panels so it reads well for young eyes.
var (
	Paper    = lipgloss.Color("#FFFDF7")
	Cloud    = lipgloss.Color("#F5F5F5")
	Ink      = lipgloss.Color("#3F3D56")
	Slate    = lipgloss.Color("#6D6D9D")
	Indigo   = lipgloss.Color("#4F46E5")
	Mint     = lipgloss.Color("#0B7A55")
	Sunshine = lipgloss.Color("#E3C700")
	Coral    = lipgloss.Color("#D43F3F")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Slate).
		Foreground(Ink).
		Padding(1, 2)

	Title  = lipgloss.NewStyle().Foreground(Indigo).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Slate)
	Hot    = lipgloss.NewStyle().Foreground(Indigo).Bold(true).Underline(true)
	Good   = lipgloss.NewStyle().Foreground(Mint).Bold(true)
	Notice = lipgloss.NewStyle().Foreground(Paper).Background(Coral).Padding(0, 1)
)

// Card is a pane filled with a stored hex color, such as a feeling or child theme.
func Card(background, accent string) lipgloss.Style {
	return Pane.
		Background(lipgloss.Color(background)).
		BorderForeground(lipgloss.Color(accent))
}
