package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Options struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	MongoURI      string
	MongoDBName   string
	TTL           time.Duration
}

// Open connects the configured backend and wraps it in a circuit breaker.
// The returned close function releases the backend connection.
func Open(ctx context.Context, opts Options, log logrus.FieldLogger) (Store, func() error, error) {
	var (
		backend Store
		closeFn = func() error { return nil }
	)

	switch opts.Backend {
	case BackendMemory, "":
		backend = NewMemoryStore()
	case BackendRedis:
		client, err := ConnectRedis(ctx, opts.RedisAddr, opts.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		backend = NewRedisStore(client, opts.TTL)
		closeFn = client.Close
		log.WithField("addr", opts.RedisAddr).Info("connected to redis")
	case BackendMongo:
		db, err := ConnectMongoDB(ctx, opts.MongoURI, opts.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		ms := NewMongoStore(db)
		if err := ms.CreateIndexes(ctx, opts.TTL); err != nil {
			_ = db.Client().Disconnect(ctx)
			return nil, nil, err
		}
		backend = ms
		closeFn = func() error { return db.Client().Disconnect(context.Background()) }
		log.WithField("database", opts.MongoDBName).Info("connected to mongodb")
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}

	name := opts.Backend
	if name == "" {
		name = BackendMemory
	}
	return NewBreakerStore(backend, BreakerConfig{Name: "store-" + name}, log), closeFn, nil
}
