package usecase

import (
	"context"

	"brightbuddy/internal/modules/checkin/domain"
	"brightbuddy/internal/modules/checkin/dto"
	checkinin "brightbuddy/internal/modules/checkin/port/in"
	"brightbuddy/internal/modules/checkin/service"
)

type Interactor struct {
	svc *service.CheckinService
}

func NewInteractor(svc *service.CheckinService) checkinin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Options() []dto.OptionOutput {
	out := make([]dto.OptionOutput, 0, len(domain.Feelings))
	for _, f := range domain.Feelings {
		out = append(out, dto.OptionOutput{Feeling: string(f), Emoji: f.Emoji(), Color: f.Color()})
	}
	return out
}

// Record returns the recorded feeling even when persisting it failed.
func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) (dto.FeelingOutput, error) {
	feeling, err := i.svc.Record(ctx, input.Feeling)
	if feeling == "" {
		return dto.FeelingOutput{Theme: toTheme(domain.DefaultTheme)}, err
	}
	return toOutput(feeling), err
}

func (i *Interactor) Current(ctx context.Context) (dto.FeelingOutput, error) {
	feeling, ok := i.svc.Current(ctx)
	if !ok {
		return dto.FeelingOutput{Theme: toTheme(domain.DefaultTheme)}, nil
	}
	return toOutput(feeling), nil
}

func toOutput(f domain.Feeling) dto.FeelingOutput {
	return dto.FeelingOutput{
		Feeling:  string(f),
		Recorded: true,
		Emoji:    f.Emoji(),
		Color:    f.Color(),
		Theme:    toTheme(f.Theme()),
	}
}

func toTheme(t domain.Theme) dto.ThemeOutput {
	return dto.ThemeOutput{Background: t.Background, Accent: t.Accent, Message: t.Message}
}
