package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ordertracker/internal/config"
	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/internal/pg"
	memrepo "github.com/GlebRadaev/ordertracker/internal/repo/mem-repo"
	pgrepo "github.com/GlebRadaev/ordertracker/internal/repo/pg-repo"
	redisrepo "github.com/GlebRadaev/ordertracker/internal/repo/redis-repo"
	"github.com/GlebRadaev/ordertracker/internal/service/migrateservice"
)

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Store is the contract every backend satisfies.
type Store interface {
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	PutOrder(ctx context.Context, order *domain.Order) error
	ListOrdersByBucket(ctx context.Context, month, year int) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	NextOrderID(ctx context.Context) (int, error)
	AppendActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	ListActivities(ctx context.Context, limit int) ([]domain.Activity, error)
	Ping(ctx context.Context) error
}

type externalStore interface {
	Store
	migrateservice.Target
}

type Repositories struct {
	Backend string
	Store   Store
	// Memory lives for the whole process and is the migration source.
	Memory *memrepo.Repository
	// External is nil when no external backend could be reached.
	External migrateservice.Target

	closers []func()
}

// New picks the backend once: Redis when configured, then Postgres, then the
// in-process store. An unreachable external store falls back to memory.
func New(ctx context.Context, cfg *config.Config) *Repositories {
	memory := memrepo.New()
	repos := &Repositories{
		Backend: BackendMemory,
		Store:   memory,
		Memory:  memory,
	}

	if !cfg.HasExternalStore() {
		zap.L().Info("no external store configured, using in-process store")
		return repos
	}

	switch {
	case cfg.RedisURL != "":
		client, err := redisrepo.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			zap.L().Warn("redis is unavailable, falling back to in-process store", zap.Error(err))
			return repos
		}
		repos.useExternal(BackendRedis, redisrepo.New(client), func() {
			if err := client.Close(); err != nil {
				zap.L().Error("can't close redis client", zap.Error(err))
			}
		})
	case cfg.Database != "":
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Warn("postgres is unavailable, falling back to in-process store", zap.Error(err))
			return repos
		}
		if err := pg.RunMigrations(ctx, pool); err != nil {
			zap.L().Warn("migrations failed, falling back to in-process store", zap.Error(err))
			pool.Close()
			return repos
		}
		repos.useExternal(BackendPostgres, pgrepo.New(pg.New(pool), pg.NewTXManager(pool)), pool.Close)
	}

	zap.L().Info("storage backend selected", zap.String("backend", repos.Backend))
	return repos
}

func (r *Repositories) useExternal(backend string, store externalStore, closer func()) {
	r.Backend = backend
	r.Store = store
	r.External = store
	r.closers = append(r.closers, closer)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("can't parse database dsn: %w", err)
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// Close releases external backend clients.
func (r *Repositories) Close() {
	for _, closer := range r.closers {
		closer()
	}
	r.closers = nil
}
