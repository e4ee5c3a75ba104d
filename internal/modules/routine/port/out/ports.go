package out

import (
	"context"

	"brightbuddy/internal/modules/routine/domain"
)

// DefinitionStore reports false from Load when nothing usable is stored.
type DefinitionStore interface {
	Load(ctx context.Context) (domain.Definition, bool, error)
	Save(ctx context.Context, definition domain.Definition) error
}

// ProgressStore reports false from Load when nothing usable is stored.
type ProgressStore interface {
	Load(ctx context.Context) (domain.Progress, bool, error)
	Save(ctx context.Context, progress domain.Progress) error
	Remove(ctx context.Context) error
}

// DefinitionCodec is the portable file format for export and import.
type DefinitionCodec interface {
	Encode(definition domain.Definition) ([]byte, error)
	Decode(data []byte) (domain.Definition, error)
}
