package out

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/checkin/domain"
	checkinout "brightbuddy/internal/modules/checkin/port/out"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/platform/kv"
	"brightbuddy/internal/platform/logging"
)

// KVFeelingStore keeps the feeling under childFeelings as a bare string.
type KVFeelingStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVFeelingStore(store kv.Store, logger hclog.Logger) checkinout.FeelingStore {
	return &KVFeelingStore{store: store, logger: logging.OrNull(logger)}
}

func (s *KVFeelingStore) Load(ctx context.Context) (domain.Feeling, bool, error) {
	raw, err := s.store.Get(ctx, kv.KeyChildFeelings)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	value, ok := unwrap(raw)
	if !ok {
		s.logger.Warn("malformed stored feeling", "key", kv.KeyChildFeelings)
		return "", false, nil
	}
	feeling, err := domain.Parse(value)
	if err != nil {
		s.logger.Warn("unknown stored feeling", "value", value)
		return "", false, nil
	}
	return feeling, true, nil
}

func (s *KVFeelingStore) Save(ctx context.Context, feeling domain.Feeling) error {
	return s.store.Set(ctx, kv.KeyChildFeelings, string(feeling))
}

// unwrap accepts a bare value, a JSON string, or {"value": "..."}.
func unwrap(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "{"):
		var wrapped struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal([]byte(trimmed), &wrapped); err != nil {
			return "", false
		}
		return wrapped.Value, true
	case strings.HasPrefix(trimmed, `"`):
		var value string
		if err := json.Unmarshal([]byte(trimmed), &value); err != nil {
			return "", false
		}
		return value, true
	default:
		return trimmed, true
	}
}
