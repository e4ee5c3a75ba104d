package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/routine/domain"
	routineout "brightbuddy/internal/modules/routine/port/out"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/platform/kv"
	"brightbuddy/internal/platform/logging"
)

type KVDefinitionStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVDefinitionStore(store kv.Store, logger hclog.Logger) routineout.DefinitionStore {
	return &KVDefinitionStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVDefinitionStore) Load(ctx context.Context) (domain.Definition, bool, error) {
	raw, err := s.store.Get(ctx, kv.KeyRoutineItems)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		s.logger.Warn("malformed stored routine", "key", kv.KeyRoutineItems, "error", err)
		return nil, false, nil
	}
	if labels == nil {
		// JSON null
		return nil, false, nil
	}
	return domain.Definition(labels), true, nil
}

func (s *KVDefinitionStore) Save(ctx context.Context, definition domain.Definition) error {
	labels := []string(definition)
	if labels == nil {
		labels = []string{}
	}
	payload, err := json.Marshal(labels)
	if err != nil {
		return fmt.Errorf("encode routine: %w", err)
	}
	return s.store.Set(ctx, kv.KeyRoutineItems, string(payload))
}

type progressRecord struct {
	Date           string `json:"date"`
	Items          []bool `json:"items"`
	CompletedCount int    `json:"completedCount"`
	Total          int    `json:"total"`
}

// legacyRecord matches records written with a "completed" count.
type legacyRecord struct {
	Completed *int `json:"completed"`
}

type KVProgressStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVProgressStore(store kv.Store, logger hclog.Logger) routineout.ProgressStore {
	return &KVProgressStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVProgressStore) Load(ctx context.Context) (domain.Progress, bool, error) {
	raw, err := s.store.Get(ctx, kv.KeyRoutineProgress)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.Progress{}, false, nil
	}
	if err != nil {
		return domain.Progress{}, false, err
	}
	var record progressRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil || record.Items == nil {
		s.logger.Warn("malformed stored progress", "key", kv.KeyRoutineProgress, "error", err)
		return domain.Progress{}, false, nil
	}
	if record.CompletedCount == 0 {
		var legacy legacyRecord
		if json.Unmarshal([]byte(raw), &legacy) == nil && legacy.Completed != nil {
			record.CompletedCount = *legacy.Completed
		}
	}
	return domain.Progress{
		Date:           record.Date,
		Items:          record.Items,
		CompletedCount: record.CompletedCount,
		Total:          record.Total,
	}, true, nil
}

func (s *KVProgressStore) Save(ctx context.Context, progress domain.Progress) error {
	items := progress.Items
	if items == nil {
		items = []bool{}
	}
	payload, err := json.Marshal(progressRecord{
		Date:           progress.Date,
		Items:          items,
		CompletedCount: progress.CompletedCount,
		Total:          progress.Total,
	})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	return s.store.Set(ctx, kv.KeyRoutineProgress, string(payload))
}

func (s *KVProgressStore) Remove(ctx context.Context) error {
	return s.store.Remove(ctx, kv.KeyRoutineProgress)
}
