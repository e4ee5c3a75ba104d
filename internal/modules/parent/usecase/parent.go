package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brightbuddy/internal/modules/parent/domain"
	"brightbuddy/internal/modules/parent/dto"
	parentin "brightbuddy/internal/modules/parent/port/in"
	"brightbuddy/internal/modules/parent/service"
	"brightbuddy/internal/platform/clock"
	apperrors "brightbuddy/internal/platform/errors"
)

type Interactor struct {
	svc *service.ParentService
}

func NewInteractor(svc *service.ParentService) parentin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) HasPIN(ctx context.Context) (bool, error) {
	return i.svc.HasPIN(ctx)
}

func (i *Interactor) SetupPIN(ctx context.Context, input dto.SetupPINInput) error {
	return i.svc.SetupPIN(ctx, input.PIN, input.Confirm)
}

func (i *Interactor) VerifyPIN(ctx context.Context, pin string) error {
	return i.svc.VerifyPIN(ctx, pin)
}

func (i *Interactor) LoadProfile(ctx context.Context) (dto.ProfileOutput, error) {
	return toOutput(i.svc.LoadProfile(ctx)), nil
}

func (i *Interactor) SaveProfile(ctx context.Context, input dto.ProfileInput) (dto.ProfileOutput, error) {
	profile := domain.Profile{
		Name:       input.Name,
		Age:        input.Age,
		Sex:        input.Sex,
		ThemeColor: input.ThemeColor,
	}
	if raw := strings.TrimSpace(input.Birthday); raw != "" {
		birthday, err := time.ParseInLocation(clock.DateLayout, raw, time.UTC)
		if err != nil {
			return dto.ProfileOutput{}, fmt.Errorf("%w: birthday must be YYYY-MM-DD", apperrors.ErrInvalidInput)
		}
		profile.SetBirthday(&birthday)
	}
	saved, err := i.svc.SaveProfile(ctx, profile)
	if err != nil {
		return toOutput(saved), err
	}
	return toOutput(saved), nil
}

func (i *Interactor) ThemeColors() []string {
	return domain.ThemeColors()
}

func toOutput(p domain.Profile) dto.ProfileOutput {
	out := dto.ProfileOutput{
		Name:       p.Name,
		Age:        p.Age,
		Sex:        p.Sex,
		ThemeColor: p.ThemeColor,
	}
	if p.Birthday != nil {
		out.Birthday = p.Birthday.Format(clock.DateLayout)
	}
	t := p.Theme()
	out.Theme = dto.ThemeOutput{Background: t.Background, Title: t.Title, TileBackground: t.TileBackground, Label: t.Label, Button: t.Button}
	return out
}
