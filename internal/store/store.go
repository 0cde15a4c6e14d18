package store

import (
	"context"
	"errors"
)

// Store is the key-value collaborator the cart engine persists into.
// Implementations give no transactional guarantees; last write wins.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}

var ErrNotFound = errors.New("key not found")
