// Package metadata stores string values by key in the local SQLite database.
package metadata

import (
	"context"
)

// Repository is a flat key-value table. Get reports found=false, not an
// error, for an absent key; deletes of absent keys succeed.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
