package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultRate  = 1.0
	DefaultPitch = 1.0
)

// Utterance is one piece of text for the voice. Zero rate or pitch means the default.
type Utterance struct {
	Text  string
	Rate  float64
	Pitch float64
}

func (u Utterance) Normalize() (Utterance, error) {
	u.Text = strings.TrimSpace(u.Text)
	if u.Text == "" {
		return Utterance{}, fmt.Errorf("utterance text is required")
	}
	if u.Rate == 0 {
		u.Rate = DefaultRate
	}
	if u.Pitch == 0 {
		u.Pitch = DefaultPitch
	}
	u.Rate = clamp(u.Rate, 0.1, 2.0)
	u.Pitch = clamp(u.Pitch, 0.5, 2.0)
	return u, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
