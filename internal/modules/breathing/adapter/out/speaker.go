package out

import (
	"context"

	breathingout "brightbuddy/internal/modules/breathing/port/out"
	speechdto "brightbuddy/internal/modules/speech/dto"
	speechin "brightbuddy/internal/modules/speech/port/in"
)

type SpeechSpeaker struct {
	speech speechin.Usecase
}

func NewSpeechSpeaker(speech speechin.Usecase) breathingout.Speaker {
	return &SpeechSpeaker{speech: speech}
}

func (a *SpeechSpeaker) Speak(ctx context.Context, text string, rate, pitch float64) error {
	return a.speech.Speak(ctx, speechdto.SpeakInput{Text: text, Rate: rate, Pitch: pitch})
}
