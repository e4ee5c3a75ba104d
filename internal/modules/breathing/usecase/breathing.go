package usecase

import (
	"context"
	"sync"

	"brightbuddy/internal/modules/breathing/domain"
	"brightbuddy/internal/modules/breathing/dto"
	breathingin "brightbuddy/internal/modules/breathing/port/in"
	breathingout "brightbuddy/internal/modules/breathing/port/out"
	"brightbuddy/internal/modules/breathing/service"
)

type Interactor struct {
	svc      *service.SessionService
	feelings breathingout.FeelingSource
}

func NewInteractor(svc *service.SessionService, feelings breathingout.FeelingSource) breathingin.Usecase {
	return &Interactor{svc: svc, feelings: feelings}
}

// Open starts a session. Without an explicit mode the last recorded feeling picks one;
// a missing or unreadable feeling means calm.
func (i *Interactor) Open(ctx context.Context, input dto.OpenInput) (breathingin.Session, error) {
	feeling := ""
	if i.feelings != nil {
		if f, ok, err := i.feelings.LastFeeling(ctx); err == nil && ok {
			feeling = f
		}
	}
	mode := domain.ModeForFeeling(feeling)
	if input.Mode != "" {
		explicit := domain.Mode(input.Mode)
		if err := explicit.Validate(); err != nil {
			return nil, err
		}
		mode = explicit
	}
	sess := i.svc.Start(ctx, mode)
	h := &handle{
		sess:    sess,
		info:    dto.SessionInfo{SessionID: sess.ID(), Feeling: feeling, Mode: string(mode)},
		updates: make(chan dto.StateOutput, 1),
	}
	h.wg.Add(1)
	go h.forward()
	return h, nil
}

type handle struct {
	sess    *service.Session
	info    dto.SessionInfo
	updates chan dto.StateOutput
	wg      sync.WaitGroup
}

func (h *handle) forward() {
	defer h.wg.Done()
	defer close(h.updates)
	for state := range h.sess.Updates() {
		out := toOutput(state)
		select {
		case <-h.updates:
		default:
		}
		h.updates <- out
	}
}

func (h *handle) Info() dto.SessionInfo { return h.info }

func (h *handle) SelectMode(ctx context.Context, mode string) (dto.StateOutput, error) {
	state, err := h.sess.SelectMode(ctx, domain.Mode(mode))
	if err != nil {
		return toOutput(state), err
	}
	return toOutput(state), nil
}

func (h *handle) State() dto.StateOutput { return toOutput(h.sess.State()) }

func (h *handle) Updates() <-chan dto.StateOutput { return h.updates }

func (h *handle) Pulse() float64 { return h.sess.Pulse() }

func (h *handle) Stop() {
	h.sess.Stop()
	h.wg.Wait()
}

func toOutput(state domain.State) dto.StateOutput {
	return dto.StateOutput{
		Mode:      string(state.Mode),
		Phase:     string(state.Phase),
		Countdown: state.Countdown,
		Cue:       state.Phase.Cue(),
	}
}
