package bootstrap

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/personalweb/portfolio-backend/config"
	"github.com/personalweb/portfolio-backend/internal/storage"
	"github.com/personalweb/portfolio-backend/internal/storage/postgres"
	redisstore "github.com/personalweb/portfolio-backend/internal/storage/redis"
	"github.com/personalweb/portfolio-backend/internal/storage/sqlite"
)

const connectTimeout = 5 * time.Second

// OpenBackend connects the key/value store named by cfg.Store.Backend.
func OpenBackend(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Store.Backend {
	case config.BackendRedis:
		b, err := redisstore.Dial(cctx, &goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, fmt.Errorf("redis connect: %w", err)
		}
		return b, nil
	case config.BackendPostgres:
		b, err := postgres.Open(cctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		return b, nil
	case config.BackendSQLite:
		b, err := sqlite.Open(cctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("sqlite open: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, cfg.Store.Backend)
	}
}
