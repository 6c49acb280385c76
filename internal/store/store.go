package store

import (
	"context"                    // Context for storage operations
	"crypto_bot/internal/domain" // Importing domain models
)

// Store persists the full user mapping. The whole snapshot is loaded before a
// batch of events is processed and rewritten wholesale after a mutating command.
type Store interface {
	// Load reads the entire user mapping. A missing snapshot yields an empty map.
	Load(ctx context.Context) (map[string]*domain.UserRecord, error)
	// Save rewrites the entire user mapping.
	Save(ctx context.Context, users map[string]*domain.UserRecord) error
}
