package out

import (
	"context"

	breathingout "brightbuddy/internal/modules/breathing/port/out"
	checkinin "brightbuddy/internal/modules/checkin/port/in"
)

type CheckinFeelingSource struct {
	checkin checkinin.Usecase
}

func NewCheckinFeelingSource(checkin checkinin.Usecase) breathingout.FeelingSource {
	return &CheckinFeelingSource{checkin: checkin}
}

func (a *CheckinFeelingSource) LastFeeling(ctx context.Context) (string, bool, error) {
	current, err := a.checkin.Current(ctx)
	if err != nil {
		return "", false, err
	}
	return current.Feeling, current.Recorded, nil
}
