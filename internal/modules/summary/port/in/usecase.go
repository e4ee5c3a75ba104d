package in

import (
	"context"

	"brightbuddy/internal/modules/summary/dto"
)

type Usecase interface {
	Today(ctx context.Context) (dto.SummaryOutput, error)
	// WriteReport refreshes the day's note under reports/YYYY/MM/DD.md.
	WriteReport(ctx context.Context) (dto.ReportOutput, error)
}
