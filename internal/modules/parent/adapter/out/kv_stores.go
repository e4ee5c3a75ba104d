package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/parent/domain"
	parentout "brightbuddy/internal/modules/parent/port/out"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/platform/kv"
	"brightbuddy/internal/platform/logging"
)

type KVPINStore struct {
	store kv.Store
}

func NewKVPINStore(store kv.Store) parentout.PINStore {
	return &KVPINStore{store: store}
}

func (s *KVPINStore) Load(ctx context.Context) (string, bool, error) {
	raw, err := s.store.Get(ctx, kv.KeyParentPIN)
	if errors.Is(err, apperrors.ErrNotFound) || (err == nil && raw == "") {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return raw, true, nil
}

func (s *KVPINStore) Save(ctx context.Context, stored string) error {
	return s.store.Set(ctx, kv.KeyParentPIN, stored)
}

type KVProfileStore struct {
	store  kv.Store
	logger hclog.Logger
}

func NewKVProfileStore(store kv.Store, logger hclog.Logger) parentout.ProfileStore {
	return &KVProfileStore{store: store, logger: logging.OrNull(logger)}
}

// Load treats malformed JSON like a miss.
func (s *KVProfileStore) Load(ctx context.Context) (domain.Profile, bool, error) {
	raw, err := s.store.Get(ctx, kv.KeyChildProfile)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}
	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		s.logger.Warn("malformed stored profile", "key", kv.KeyChildProfile, "error", err)
		return domain.Profile{}, false, nil
	}
	return profile, true, nil
}

func (s *KVProfileStore) Save(ctx context.Context, profile domain.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.store.Set(ctx, kv.KeyChildProfile, string(payload))
}
