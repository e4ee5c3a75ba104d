package domain_test

import (
	"testing"

	"brightbuddy/internal/modules/speech/domain"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	if _, err := (domain.Utterance{Text: "   "}).Normalize(); err == nil {
		t.Fatalf("blank text should fail")
	}
	u, err := domain.Utterance{Text: " pop "}.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if u.Text != "pop" || u.Rate != domain.DefaultRate || u.Pitch != domain.DefaultPitch {
		t.Fatalf("unexpected defaults %+v", u)
	}
	u, _ = domain.Utterance{Text: "x", Rate: 9, Pitch: 0.1}.Normalize()
	if u.Rate != 2.0 || u.Pitch != 0.5 {
		t.Fatalf("expected clamped values, got %+v", u)
	}
}
