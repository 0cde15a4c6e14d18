package cart

import (
	"context"
	"errors"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// ErrNotLoaded is returned by writes attempted before Load. Writing the
// initial empty state before the persisted cart has been read would wipe it.
var ErrNotLoaded = errors.New("cart session not loaded")

// Session holds the in-memory cart for one page lifecycle and mirrors every
// change into the engine's store once the persisted cart has been loaded.
// A Session is not safe for concurrent use.
type Session struct {
	engine   *Engine
	loaded   bool
	snapshot domain.Snapshot
}

func NewSession(engine *Engine) *Session {
	return &Session{
		engine:   engine,
		snapshot: domain.Snapshot{},
	}
}

// Load reads the persisted cart into the session and opens it for writes.
func (s *Session) Load(ctx context.Context) domain.Snapshot {
	s.snapshot = s.engine.Load(ctx)
	s.loaded = true
	return s.Snapshot()
}

func (s *Session) Loaded() bool {
	return s.loaded
}

// Snapshot returns a copy of the current cart.
func (s *Session) Snapshot() domain.Snapshot {
	return clone(s.snapshot)
}

// Save writes the current cart to the store.
func (s *Session) Save(ctx context.Context) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	return s.engine.Save(ctx, s.snapshot)
}

func (s *Session) Add(ctx context.Context, productID int64) (domain.Snapshot, error) {
	return s.apply(ctx, func(snap domain.Snapshot) domain.Snapshot {
		return AddOrIncrement(snap, productID)
	})
}

func (s *Session) SetQuantity(ctx context.Context, productID int64, quantity float64) (domain.Snapshot, error) {
	return s.apply(ctx, func(snap domain.Snapshot) domain.Snapshot {
		return SetQuantity(snap, productID, quantity)
	})
}

// apply runs a reducer and persists the result. Store failures are logged and
// otherwise ignored: the in-memory cart stays authoritative.
func (s *Session) apply(ctx context.Context, reduce func(domain.Snapshot) domain.Snapshot) (domain.Snapshot, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	s.snapshot = reduce(s.snapshot)

	if err := s.engine.Save(ctx, s.snapshot); err != nil {
		s.engine.log.WithError(err).Warn("cart save failed")
	}
	return s.Snapshot(), nil
}
