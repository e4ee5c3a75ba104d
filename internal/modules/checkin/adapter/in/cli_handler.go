package in

import (
	"context"

	"brightbuddy/internal/modules/checkin/dto"
	checkinin "brightbuddy/internal/modules/checkin/port/in"
)

type CLIHandler struct {
	usecase checkinin.Usecase
}

func NewCLIHandler(usecase checkinin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Options() []dto.OptionOutput {
	return h.usecase.Options()
}

func (h CLIHandler) Record(ctx context.Context, feeling string) (dto.FeelingOutput, error) {
	return h.usecase.Record(ctx, dto.RecordInput{Feeling: feeling})
}

func (h CLIHandler) Current(ctx context.Context) (dto.FeelingOutput, error) {
	return h.usecase.Current(ctx)
}
