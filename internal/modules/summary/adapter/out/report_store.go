package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"brightbuddy/internal/modules/summary/domain"
	summaryout "brightbuddy/internal/modules/summary/port/out"
	"brightbuddy/internal/platform/clock"
	"brightbuddy/internal/platform/markdown"
)

var checklistBlock = markdown.Block{
	Start: "<!-- brightbuddy:checklist:start -->",
	End:   "<!-- brightbuddy:checklist:end -->",
}

type reportMeta struct {
	Date      string `yaml:"date"`
	Feeling   string `yaml:"feeling,omitempty"`
	Completed int    `yaml:"completed"`
	Total     int    `yaml:"total"`
	State     string `yaml:"state"`
}

// MarkdownReportStore writes one note per day under <data>/reports/YYYY/MM/DD.md.
type MarkdownReportStore struct {
	dataDir string
}

func NewMarkdownReportStore(dataDir string) summaryout.ReportStore {
	return &MarkdownReportStore{dataDir: dataDir}
}

func (s *MarkdownReportStore) Save(_ context.Context, snapshot domain.Snapshot) (string, error) {
	day, err := time.Parse(clock.DateLayout, snapshot.Date)
	if err != nil {
		return "", fmt.Errorf("report date %q: %w", snapshot.Date, err)
	}
	path := filepath.Join(s.dataDir, "reports", day.Format("2006"), day.Format("01"), day.Format("02")+".md")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	body := "# " + day.Format("Monday, January 2") + "\n"
	if existing, err := os.ReadFile(path); err == nil {
		var previous reportMeta
		if kept, splitErr := markdown.Split(string(existing), &previous); splitErr == nil && strings.TrimSpace(kept) != "" {
			body = kept
		}
	}
	body = checklistBlock.Replace(body, checklist(snapshot))

	rendered, err := markdown.Render(reportMeta{
		Date:      snapshot.Date,
		Feeling:   snapshot.Feeling,
		Completed: snapshot.Completed,
		Total:     snapshot.Total,
		State:     string(snapshot.State),
	}, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func checklist(snapshot domain.Snapshot) string {
	var b strings.Builder
	if snapshot.Feeling != "" {
		fmt.Fprintf(&b, "Feeling: %s\n\n", snapshot.Feeling)
	}
	for _, t := range snapshot.Tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, t.Label)
	}
	fmt.Fprintf(&b, "\n%d of %d done: %s", snapshot.Completed, snapshot.Total, snapshot.State.Message())
	return b.String()
}
