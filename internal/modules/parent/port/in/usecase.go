package in

import (
	"context"

	"brightbuddy/internal/modules/parent/dto"
)

type Usecase interface {
	HasPIN(ctx context.Context) (bool, error)
	SetupPIN(ctx context.Context, input dto.SetupPINInput) error
	// VerifyPIN returns ErrNoPIN when none is set and ErrIncorrectPIN on mismatch.
	VerifyPIN(ctx context.Context, pin string) error
	LoadProfile(ctx context.Context) (dto.ProfileOutput, error)
	SaveProfile(ctx context.Context, input dto.ProfileInput) (dto.ProfileOutput, error)
	ThemeColors() []string
}
