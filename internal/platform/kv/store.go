// Package kv is the durable key-value surface every screen reads and writes.
// Values are strings; structured values are stored as JSON.
package kv

import "context"

const (
	KeyChildFeelings   = "childFeelings"
	KeyRoutineItems    = "routineItems"
	KeyRoutineProgress = "routineProgress"
	KeyChildProfile    = "childProfile"
	KeyParentPIN       = "parentPin"
)

// Store returns apperrors.ErrNotFound from Get when the key is absent.
// Remove of an absent key succeeds.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
