package store

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

type BreakerConfig struct {
	Name             string
	FailureThreshold uint32        // consecutive failures before opening
	OpenTimeout      time.Duration // how long to stay open before probing again
}

// BreakerStore stops calling a failing backend so reads degrade immediately
// instead of waiting on timeouts. ErrNotFound does not count as a failure.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker[string]
}

func NewBreakerStore(next Store, cfg BreakerConfig, log logrus.FieldLogger) *BreakerStore {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 10 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("store circuit breaker changed state")
		},
	}

	return &BreakerStore{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[string](settings),
	}
}

func (b *BreakerStore) Get(ctx context.Context, key string) (string, error) {
	return b.cb.Execute(func() (string, error) {
		return b.next.Get(ctx, key)
	})
}

func (b *BreakerStore) Set(ctx context.Context, key, value string) error {
	_, err := b.cb.Execute(func() (string, error) {
		return "", b.next.Set(ctx, key, value)
	})
	return err
}

func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}
