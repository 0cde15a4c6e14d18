package service

import (
	"context"
	"fmt"

	"github.com/fjod/go_cart/storefront/internal/cart"
	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// CartService gives every visitor their own cart key in a shared store.
// Concurrent writes for the same visitor are last-write-wins.
type CartService struct {
	store   store.Store
	catalog catalog.Catalog
	log     logrus.FieldLogger
	sfg     singleflight.Group // collapses concurrent reads of the same cart
}

func NewCartService(s store.Store, c catalog.Catalog, log logrus.FieldLogger) *CartService {
	return &CartService{
		store:   s,
		catalog: c,
		log:     log,
	}
}

func (s *CartService) GetCart(ctx context.Context, visitorID string) domain.Snapshot {
	key := cartKey(visitorID)
	v, _, _ := s.sfg.Do(key, func() (interface{}, error) {
		return cart.NewEngine(s.store, key, s.log).Load(ctx), nil
	})

	// callers sharing a flight must not share a backing array
	shared := v.(domain.Snapshot)
	out := make(domain.Snapshot, len(shared))
	copy(out, shared)
	return out
}

func (s *CartService) AddItem(ctx context.Context, visitorID string, productID int64) (domain.Snapshot, error) {
	sess := s.session(ctx, visitorID)
	snap, err := sess.Add(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}
	return snap, nil
}

// UpdateQuantity sets the quantity of a product already in the cart. Zero or
// a negative quantity removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, visitorID string, productID int64, quantity float64) (domain.Snapshot, error) {
	sess := s.session(ctx, visitorID)
	snap, err := sess.SetQuantity(ctx, productID, quantity)
	if err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	return snap, nil
}

func (s *CartService) RemoveItem(ctx context.Context, visitorID string, productID int64) (domain.Snapshot, error) {
	return s.UpdateQuantity(ctx, visitorID, productID, 0)
}

func (s *CartService) Summary(snapshot domain.Snapshot) domain.Totals {
	return cart.ComputeTotals(snapshot, s.catalog)
}

func (s *CartService) Catalog() catalog.Catalog {
	return s.catalog
}

func (s *CartService) session(ctx context.Context, visitorID string) *cart.Session {
	sess := cart.NewSession(cart.NewEngine(s.store, cartKey(visitorID), s.log))
	sess.Load(ctx)
	return sess
}

func cartKey(visitorID string) string {
	if visitorID == "" {
		return cart.DefaultKey
	}
	return fmt.Sprintf("%s:%s", cart.DefaultKey, visitorID)
}
