package domain

import (
	"fmt"
	"strings"

	apperrors "brightbuddy/internal/platform/errors"
)

type Feeling string

const (
	Happy       Feeling = "Happy"
	Okay        Feeling = "Okay"
	Sad         Feeling = "Sad"
	Angry       Feeling = "Angry"
	Overwhelmed Feeling = "Overwhelmed"
)

// Feelings is the order the check-in screen offers them in.
var Feelings = []Feeling{Happy, Okay, Sad, Angry, Overwhelmed}

type Voice struct {
	Rate  float64
	Pitch float64
}

// Theme colors the calm screen after a check-in.
type Theme struct {
	Background string
	Accent     string
	Message    string
}

type feelingInfo struct {
	emoji string
	color string
	voice Voice
	theme Theme
}

var feelingTable = map[Feeling]feelingInfo{
	Happy:       {emoji: "😊", color: "#FFF3B0", voice: Voice{Rate: 1.1, Pitch: 1.2}, theme: Theme{Background: "#FFF7C8", Accent: "#E3C700", Message: "You’re doing great 💛"}},
	Okay:        {emoji: "😐", color: "#E0ECFF", voice: Voice{Rate: 1.0, Pitch: 1.0}, theme: Theme{Background: "#EAF6FF", Accent: "#2D4A8C", Message: "Let’s keep things calm 💙"}},
	Sad:         {emoji: "😞", color: "#CFE4FF", voice: Voice{Rate: 0.85, Pitch: 0.9}, theme: Theme{Background: "#DCEBFF", Accent: "#2460B9", Message: "It’s okay to feel sad 💙"}},
	Angry:       {emoji: "😡", color: "#FFD6D6", voice: Voice{Rate: 0.9, Pitch: 0.9}, theme: Theme{Background: "#FFE0E0", Accent: "#D43F3F", Message: "Let’s settle the storm ❤️"}},
	Overwhelmed: {emoji: "😵", color: "#EAD9FF", voice: Voice{Rate: 0.8, Pitch: 0.95}, theme: Theme{Background: "#F1E8FF", Accent: "#7443B5", Message: "We’ll slow things down 💜"}},
}

// DefaultTheme is used before any feeling has been recorded.
var DefaultTheme = Theme{Background: "#EAF6FF", Accent: "#2D4A8C", Message: "Let’s slow down together"}

// Parse accepts a feeling name in any letter case.
func Parse(raw string) (Feeling, error) {
	trimmed := strings.TrimSpace(raw)
	for _, f := range Feelings {
		if strings.EqualFold(string(f), trimmed) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown feeling %q", apperrors.ErrInvalidInput, raw)
}

func (f Feeling) Valid() bool {
	_, ok := feelingTable[f]
	return ok
}

func (f Feeling) Emoji() string { return feelingTable[f].emoji }

func (f Feeling) Color() string { return feelingTable[f].color }

// Voice falls back to a neutral 1.0/1.0 for unknown feelings.
func (f Feeling) Voice() Voice {
	if info, ok := feelingTable[f]; ok {
		return info.voice
	}
	return Voice{Rate: 1.0, Pitch: 1.0}
}

func (f Feeling) Theme() Theme {
	if info, ok := feelingTable[f]; ok {
		return info.theme
	}
	return DefaultTheme
}

func (f Feeling) Announcement() string {
	return "You have said you feel " + string(f)
}
