package out

import (
	"context"

	"brightbuddy/internal/modules/parent/domain"
)

type PINStore interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, stored string) error
}

type ProfileStore interface {
	Load(ctx context.Context) (domain.Profile, bool, error)
	Save(ctx context.Context, profile domain.Profile) error
}

type PINHasher interface {
	Hash(pin string) (string, error)
	Compare(stored, pin string) (bool, error)
}
