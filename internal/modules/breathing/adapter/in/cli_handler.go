package in

import (
	"context"

	"brightbuddy/internal/modules/breathing/dto"
	breathingin "brightbuddy/internal/modules/breathing/port/in"
)

type CLIHandler struct {
	usecase breathingin.Usecase
}

func NewCLIHandler(usecase breathingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Open starts a session; mode may be empty to follow the recorded feeling.
func (h CLIHandler) Open(ctx context.Context, mode string) (breathingin.Session, error) {
	return h.usecase.Open(ctx, dto.OpenInput{Mode: mode})
}
