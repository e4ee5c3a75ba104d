package out

import "context"

type FeelingSource interface {
	// LastFeeling returns ok=false when no feeling has been recorded.
	LastFeeling(ctx context.Context) (feeling string, ok bool, err error)
}

type Speaker interface {
	Speak(ctx context.Context, text string, rate, pitch float64) error
}
