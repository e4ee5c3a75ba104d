package in

import (
	"context"

	"brightbuddy/internal/modules/summary/dto"
	summaryin "brightbuddy/internal/modules/summary/port/in"
)

type CLIHandler struct {
	usecase summaryin.Usecase
}

func NewCLIHandler(usecase summaryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) WriteReport(ctx context.Context) (dto.ReportOutput, error) {
	return h.usecase.WriteReport(ctx)
}
