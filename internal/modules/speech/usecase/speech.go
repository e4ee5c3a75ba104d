package usecase

import (
	"context"

	"brightbuddy/internal/modules/speech/domain"
	"brightbuddy/internal/modules/speech/dto"
	speechin "brightbuddy/internal/modules/speech/port/in"
	"brightbuddy/internal/modules/speech/service"
)

type Interactor struct {
	svc *service.SpeechService
}

func NewInteractor(svc *service.SpeechService) speechin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Speak(_ context.Context, input dto.SpeakInput) error {
	return i.svc.Speak(domain.Utterance{Text: input.Text, Rate: input.Rate, Pitch: input.Pitch})
}

func (i *Interactor) Close() error {
	return i.svc.Close()
}
