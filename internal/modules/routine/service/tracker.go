package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/routine/domain"
	routineout "brightbuddy/internal/modules/routine/port/out"
	"brightbuddy/internal/platform/clock"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/platform/logging"
	"brightbuddy/internal/platform/tx"
)

// View is the tracker state handed to callers; both fields are copies.
type View struct {
	Definition domain.Definition
	Progress   domain.Progress
}

// Tracker owns the routine screen state. Reads fall back to defaults; a failed
// write leaves the in-memory state in place and returns ErrStorageWrite.
type Tracker struct {
	definitions routineout.DefinitionStore
	progress    routineout.ProgressStore
	codec       routineout.DefinitionCodec
	tx          tx.Manager
	clock       clock.Clock
	logger      hclog.Logger

	mu         sync.Mutex
	loaded     bool
	definition domain.Definition
	current    domain.Progress
}

func NewTracker(definitions routineout.DefinitionStore, progress routineout.ProgressStore, codec routineout.DefinitionCodec, txm tx.Manager, clk clock.Clock, logger hclog.Logger) *Tracker {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &Tracker{
		definitions: definitions,
		progress:    progress,
		codec:       codec,
		tx:          txm,
		clock:       clk,
		logger:      logging.OrNull(logger),
	}
}

// Load rereads both records. It never fails: anything unreadable becomes the default.
func (t *Tracker) Load(ctx context.Context) View {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loadLocked(ctx)
	return t.viewLocked()
}

func (t *Tracker) loadLocked(ctx context.Context) {
	definition, ok, err := t.definitions.Load(ctx)
	if err != nil {
		t.logger.Warn("load routine definition", "error", err)
	}
	if err != nil || !ok {
		definition = domain.DefaultTasks.Clone()
	}
	stored, found, err := t.progress.Load(ctx)
	if err != nil {
		t.logger.Warn("load routine progress", "error", err)
		found = false
	}
	today := clock.Today(t.clock)
	current, outcome := domain.Reconcile(stored, found, len(definition), today)
	if outcome.Discarded() {
		t.logger.Debug("discard routine progress", "reason", string(outcome), "stored_date", stored.Date, "today", today)
		if err := t.progress.Remove(ctx); err != nil {
			t.logger.Warn("remove routine progress", "error", err)
		}
	}
	t.definition = definition
	t.current = current
	t.loaded = true
}

// ensureCurrentLocked loads on first use and again once the calendar day has moved on.
func (t *Tracker) ensureCurrentLocked(ctx context.Context) {
	if !t.loaded || t.current.Date != clock.Today(t.clock) {
		t.loadLocked(ctx)
	}
}

func (t *Tracker) viewLocked() View {
	return View{Definition: t.definition.Clone(), Progress: t.current.Clone()}
}

// SetTaskStatus overwrites the whole progress record for today.
func (t *Tracker) SetTaskStatus(ctx context.Context, index int, done bool) (View, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureCurrentLocked(ctx)
	next, err := t.current.WithStatus(index, done, clock.Today(t.clock))
	if err != nil {
		return t.viewLocked(), err
	}
	t.current = next
	if err := t.progress.Save(ctx, next); err != nil {
		t.logger.Error("save routine progress", "index", index, "error", err)
		return t.viewLocked(), fmt.Errorf("save progress: %w: %w", apperrors.ErrStorageWrite, err)
	}
	return t.viewLocked(), nil
}

func (t *Tracker) Add(ctx context.Context, label string) (View, error) {
	return t.edit(ctx, "add", func(d domain.Definition) (domain.Definition, bool, error) {
		next, err := d.Add(label)
		return next, err == nil, err
	})
}

func (t *Tracker) Remove(ctx context.Context, index int) (View, error) {
	return t.edit(ctx, "remove", func(d domain.Definition) (domain.Definition, bool, error) {
		next, err := d.Remove(index)
		return next, err == nil, err
	})
}

func (t *Tracker) MoveUp(ctx context.Context, index int) (View, error) {
	return t.edit(ctx, "move_up", func(d domain.Definition) (domain.Definition, bool, error) {
		return d.MoveUp(index)
	})
}

func (t *Tracker) MoveDown(ctx context.Context, index int) (View, error) {
	return t.edit(ctx, "move_down", func(d domain.Definition) (domain.Definition, bool, error) {
		return d.MoveDown(index)
	})
}

// Replace swaps in a whole definition, as import does. Replacing with an
// identical definition keeps today's progress.
func (t *Tracker) Replace(ctx context.Context, definition domain.Definition) (View, error) {
	if err := definition.Validate(); err != nil {
		return View{}, err
	}
	return t.edit(ctx, "replace", func(current domain.Definition) (domain.Definition, bool, error) {
		if slices.Equal(current, definition) {
			return current, false, nil
		}
		return definition.Clone(), true, nil
	})
}

func (t *Tracker) Export(ctx context.Context) ([]byte, error) {
	t.mu.Lock()
	t.ensureCurrentLocked(ctx)
	definition := t.definition.Clone()
	t.mu.Unlock()
	return t.codec.Encode(definition)
}

func (t *Tracker) Import(ctx context.Context, data []byte) (View, error) {
	definition, err := t.codec.Decode(data)
	if err != nil {
		return View{}, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	return t.Replace(ctx, definition)
}

// edit persists the new definition and drops stored progress in one transaction.
// An unchanged definition writes nothing.
func (t *Tracker) edit(ctx context.Context, op string, apply func(domain.Definition) (domain.Definition, bool, error)) (View, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ensureCurrentLocked(ctx)
	next, changed, err := apply(t.definition)
	if err != nil {
		return t.viewLocked(), err
	}
	if !changed {
		return t.viewLocked(), nil
	}
	t.definition = next
	t.current = domain.NewProgress(clock.Today(t.clock), len(next))
	err = t.tx.Within(ctx, func(txCtx context.Context) error {
		if err := t.definitions.Save(txCtx, next); err != nil {
			return err
		}
		return t.progress.Remove(txCtx)
	})
	if err != nil {
		t.logger.Error("edit routine", "op", op, "error", err)
		return t.viewLocked(), fmt.Errorf("%s routine: %w: %w", op, apperrors.ErrStorageWrite, err)
	}
	t.logger.Info("routine edited", "op", op, "tasks", len(next))
	return t.viewLocked(), nil
}
