package out

import (
	"context"

	checkinout "brightbuddy/internal/modules/checkin/port/out"
	speechdto "brightbuddy/internal/modules/speech/dto"
	speechin "brightbuddy/internal/modules/speech/port/in"
)

type SpeechSpeaker struct {
	speech speechin.Usecase
}

func NewSpeechSpeaker(speech speechin.Usecase) checkinout.Speaker {
	return &SpeechSpeaker{speech: speech}
}

func (s *SpeechSpeaker) Speak(ctx context.Context, text string, rate, pitch float64) error {
	return s.speech.Speak(ctx, speechdto.SpeakInput{Text: text, Rate: rate, Pitch: pitch})
}
