package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPaletteSubmitAndCancel(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	_ = p.Open()
	if !p.Visible() {
		t.Fatalf("expected palette visible after open")
	}
	for _, r := range "report" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if !strings.Contains(p.View(), "report") {
		t.Fatalf("expected matching hint in view")
	}
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() || cmd == nil {
		t.Fatalf("expected palette closed with a submit command")
	}
	submit, ok := cmd().(PaletteSubmitMsg)
	if !ok || submit.Input != "report" {
		t.Fatalf("unexpected submit message %#v", submit)
	}

	_ = p.Open()
	p, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("expected palette hidden after esc")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel message")
	}
}
