package out

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/speech/domain"
	speechout "brightbuddy/internal/modules/speech/port/out"
	"brightbuddy/internal/platform/logging"
)

// LogVoice records utterances in the log instead of playing them.
type LogVoice struct {
	logger hclog.Logger
}

func NewLogVoice(logger hclog.Logger) speechout.Voice {
	return &LogVoice{logger: logging.OrNull(logger)}
}

func (v *LogVoice) Say(_ context.Context, u domain.Utterance) error {
	v.logger.Info("speak", "text", u.Text, "rate", u.Rate, "pitch", u.Pitch)
	return nil
}

func (v *LogVoice) Close() error { return nil }
