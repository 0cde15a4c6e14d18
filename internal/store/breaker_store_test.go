package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	calls int
	err   error
}

func (f *failingStore) Get(context.Context, string) (string, error) {
	f.calls++
	return "", f.err
}

func (f *failingStore) Set(context.Context, string, string) error {
	f.calls++
	return f.err
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestBreakerStore_OpensAfterConsecutiveFailures(t *testing.T) {
	next := &failingStore{err: errors.New("connection refused")}
	s := NewBreakerStore(next, BreakerConfig{Name: "test", FailureThreshold: 3, OpenTimeout: time.Minute}, quietLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Get(ctx, "cart")
		assert.ErrorContains(t, err, "connection refused")
	}
	assert.Equal(t, gobreaker.StateOpen, s.State())

	_, err := s.Get(ctx, "cart")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, s.Set(ctx, "cart", "[]"), gobreaker.ErrOpenState)
	assert.Equal(t, 3, next.calls, "open breaker must not reach the backend")
}

func TestBreakerStore_NotFoundIsNotAFailure(t *testing.T) {
	next := &failingStore{err: ErrNotFound}
	s := NewBreakerStore(next, BreakerConfig{Name: "test", FailureThreshold: 1}, quietLogger())

	for i := 0; i < 5; i++ {
		_, err := s.Get(context.Background(), "cart")
		assert.ErrorIs(t, err, ErrNotFound)
	}
	assert.Equal(t, gobreaker.StateClosed, s.State())
	assert.Equal(t, 5, next.calls)
}

func TestBreakerStore_PassesThrough(t *testing.T) {
	s := NewBreakerStore(NewMemoryStore(), BreakerConfig{Name: "test"}, quietLogger())
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "cart", `[{"id":5,"qty":1}]`))
	v, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":5,"qty":1}]`, v)
}
