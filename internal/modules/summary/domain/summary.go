package domain

// State is the qualitative progress label shown on the home screen.
type State string

const (
	StateNotStarted State = "not-started"
	StateStarted    State = "started"
	StateHalfway    State = "halfway"
	StateAllDone    State = "all-done"
)

// StateFor buckets progress: nothing done, under half, at least half, everything.
// An empty routine counts as not started.
func StateFor(completed, total int) State {
	switch {
	case total <= 0 || completed <= 0:
		return StateNotStarted
	case completed >= total:
		return StateAllDone
	case completed*2 >= total:
		return StateHalfway
	default:
		return StateStarted
	}
}

func (s State) Message() string {
	switch s {
	case StateStarted:
		return "Great start! Keep going 🌱"
	case StateHalfway:
		return "More than halfway there ⭐"
	case StateAllDone:
		return "All done for today! 🎉"
	default:
		return "Ready when you are ☀️"
	}
}

type Task struct {
	Label string
	Done  bool
}

// Snapshot is today's home summary. Feeling is empty when none was recorded.
type Snapshot struct {
	Date      string
	Feeling   string
	Completed int
	Total     int
	State     State
	Tasks     []Task
}

func NewSnapshot(date, feeling string, tasks []Task) Snapshot {
	completed := 0
	for _, t := range tasks {
		if t.Done {
			completed++
		}
	}
	return Snapshot{
		Date:      date,
		Feeling:   feeling,
		Completed: completed,
		Total:     len(tasks),
		State:     StateFor(completed, len(tasks)),
		Tasks:     tasks,
	}
}
