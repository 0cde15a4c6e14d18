package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/store"
	"github.com/sirupsen/logrus"
)

// DefaultKey is the store key a cart lives under when there is one cart per store.
const DefaultKey = "cart"

// Engine reads and writes one cart blob under a single store key.
type Engine struct {
	store store.Store
	key   string
	log   logrus.FieldLogger
}

func NewEngine(s store.Store, key string, log logrus.FieldLogger) *Engine {
	if key == "" {
		key = DefaultKey
	}
	return &Engine{
		store: s,
		key:   key,
		log:   log.WithField("cart_key", key),
	}
}

func (e *Engine) Key() string {
	return e.key
}

// Load returns the persisted cart. It never fails: a missing, unreadable or
// malformed blob yields an empty snapshot.
func (e *Engine) Load(ctx context.Context) domain.Snapshot {
	raw, err := e.store.Get(ctx, e.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			e.log.WithError(err).Warn("cart load failed, starting empty")
		}
		return domain.Snapshot{}
	}
	if raw == "" {
		return domain.Snapshot{}
	}

	snapshot := Parse([]byte(raw))
	e.log.WithField("entries", len(snapshot)).Debug("cart loaded")
	return snapshot
}

// Save overwrites the persisted cart with snapshot.
func (e *Engine) Save(ctx context.Context, snapshot domain.Snapshot) error {
	if snapshot == nil {
		snapshot = domain.Snapshot{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := e.store.Set(ctx, e.key, string(data)); err != nil {
		return fmt.Errorf("save cart failed: %w", err)
	}
	return nil
}
