package in

import (
	"context"

	"brightbuddy/internal/modules/checkin/dto"
)

type Usecase interface {
	Options() []dto.OptionOutput
	Record(ctx context.Context, input dto.RecordInput) (dto.FeelingOutput, error)
	Current(ctx context.Context) (dto.FeelingOutput, error)
}
