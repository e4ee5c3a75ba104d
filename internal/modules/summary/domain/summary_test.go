package domain

import "testing"

func TestStateFor(t *testing.T) {
	t.Parallel()
	cases := []struct {
		completed, total int
		want             State
	}{
		{0, 6, StateNotStarted},
		{0, 0, StateNotStarted},
		{1, 6, StateStarted},
		{2, 6, StateStarted},
		{3, 6, StateHalfway},
		{2, 3, StateHalfway},
		{1, 3, StateStarted},
		{5, 6, StateHalfway},
		{6, 6, StateAllDone},
	}
	for _, tc := range cases {
		if got := StateFor(tc.completed, tc.total); got != tc.want {
			t.Fatalf("StateFor(%d,%d) = %s, want %s", tc.completed, tc.total, got, tc.want)
		}
	}
}

func TestNewSnapshotCountsDoneTasks(t *testing.T) {
	t.Parallel()
	s := NewSnapshot("2026-05-01", "Okay", []Task{{Label: "A", Done: true}, {Label: "B"}})
	if s.Completed != 1 || s.Total != 2 || s.State != StateHalfway {
		t.Fatalf("unexpected snapshot %+v", s)
	}
	if StateAllDone.Message() == StateNotStarted.Message() {
		t.Fatalf("expected distinct messages")
	}
}
