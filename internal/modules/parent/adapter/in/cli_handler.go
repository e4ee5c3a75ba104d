package in

import (
	"context"

	"brightbuddy/internal/modules/parent/dto"
	parentin "brightbuddy/internal/modules/parent/port/in"
)

type CLIHandler struct {
	usecase parentin.Usecase
}

func NewCLIHandler(usecase parentin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) HasPIN(ctx context.Context) (bool, error) {
	return h.usecase.HasPIN(ctx)
}

func (h CLIHandler) SetupPIN(ctx context.Context, pin, confirm string) error {
	return h.usecase.SetupPIN(ctx, dto.SetupPINInput{PIN: pin, Confirm: confirm})
}

func (h CLIHandler) VerifyPIN(ctx context.Context, pin string) error {
	return h.usecase.VerifyPIN(ctx, pin)
}

func (h CLIHandler) LoadProfile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.LoadProfile(ctx)
}

func (h CLIHandler) SaveProfile(ctx context.Context, input dto.ProfileInput) (dto.ProfileOutput, error) {
	return h.usecase.SaveProfile(ctx, input)
}

func (h CLIHandler) ThemeColors() []string {
	return h.usecase.ThemeColors()
}
