package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/fjod/go_cart/storefront/internal/catalog"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	m    sync.Mutex
	next store.Store
	gets int
}

func (c *countingStore) Get(ctx context.Context, key string) (string, error) {
	c.m.Lock()
	c.gets++
	c.m.Unlock()
	return c.next.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key, value string) error {
	return c.next.Set(ctx, key, value)
}

func newTestService(t *testing.T) (*CartService, store.Store) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := store.NewMemoryStore()
	return NewCartService(s, catalog.Default(), l), s
}

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart", cartKey(""))
	assert.Equal(t, "cart:test123", cartKey("test123"))
}

func TestGetCart_Empty(t *testing.T) {
	sut, _ := newTestService(t)

	assert.Equal(t, domain.Snapshot{}, sut.GetCart(context.Background(), "v1"))
}

func TestAddItem_PersistsPerVisitor(t *testing.T) {
	sut, s := newTestService(t)
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "v1", 1)
	require.NoError(t, err)
	snap, err := sut.AddItem(ctx, "v1", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{{ProductID: 1, Quantity: 2}}, snap)

	_, err = sut.AddItem(ctx, "v2", 3)
	require.NoError(t, err)

	raw, err := s.Get(ctx, "cart:v1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"qty":2}]`, raw)

	assert.Equal(t, domain.Snapshot{{ProductID: 3, Quantity: 1}}, sut.GetCart(ctx, "v2"))
}

func TestUpdateQuantity(t *testing.T) {
	sut, _ := newTestService(t)
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "v1", 2)
	require.NoError(t, err)

	snap, err := sut.UpdateQuantity(ctx, "v1", 2, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{{ProductID: 2, Quantity: 4}}, snap)

	snap, err = sut.UpdateQuantity(ctx, "v1", 6, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{{ProductID: 2, Quantity: 4}}, snap, "absent product is not created")
}

func TestRemoveItem(t *testing.T) {
	sut, _ := newTestService(t)
	ctx := context.Background()

	_, err := sut.AddItem(ctx, "v1", 2)
	require.NoError(t, err)

	snap, err := sut.RemoveItem(ctx, "v1", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{}, snap)

	snap, err = sut.RemoveItem(ctx, "v1", 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Snapshot{}, snap)
	assert.Equal(t, domain.Snapshot{}, sut.GetCart(ctx, "v1"))
}

func TestSummary(t *testing.T) {
	sut, _ := newTestService(t)

	totals := sut.Summary(domain.Snapshot{{ProductID: 1, Quantity: 2}, {ProductID: 404, Quantity: 1}})

	assert.Len(t, totals.Lines, 2)
	assert.Equal(t, "4397.80", totals.Total.StringFixed(2))
}

func TestGetCart_ConcurrentReads(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	cs := &countingStore{next: store.NewMemoryStore()}
	ctx := context.Background()
	require.NoError(t, cs.next.Set(ctx, "cart:v1", `[{"id":5,"qty":1}]`))

	sut := NewCartService(cs, catalog.Default(), l)

	var wg sync.WaitGroup
	results := make([]domain.Snapshot, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = sut.GetCart(ctx, "v1")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, domain.Snapshot{{ProductID: 5, Quantity: 1}}, r)
	}
	cs.m.Lock()
	defer cs.m.Unlock()
	assert.LessOrEqual(t, cs.gets, 20)
	assert.GreaterOrEqual(t, cs.gets, 1)
}
