package in

import (
	"context"

	"brightbuddy/internal/modules/breathing/dto"
)

type Usecase interface {
	Open(ctx context.Context, input dto.OpenInput) (Session, error)
}

// Session is one visit to the calm screen. Callers must Stop it when the screen closes.
type Session interface {
	Info() dto.SessionInfo
	SelectMode(ctx context.Context, mode string) (dto.StateOutput, error)
	State() dto.StateOutput
	// Updates delivers the latest state after every change and is closed by Stop.
	Updates() <-chan dto.StateOutput
	Pulse() float64
	Stop()
}
