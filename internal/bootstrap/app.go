package bootstrap

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/config"
	httpapi "github.com/personalweb/portfolio-backend/internal/api/http"
	"github.com/personalweb/portfolio-backend/internal/auth"
	"github.com/personalweb/portfolio-backend/internal/events"
	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
	pfirestore "github.com/personalweb/portfolio-backend/internal/portfolio/firestore"
	"github.com/personalweb/portfolio-backend/internal/portfolio/store"
	"github.com/personalweb/portfolio-backend/internal/storage"
	redisstore "github.com/personalweb/portfolio-backend/internal/storage/redis"
)

// App is the wired portfolio runtime shared by the API server and the CLI.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	Facade *portfolio.Facade
	Hub    *events.Hub
	// Store is nil when collections are served remotely.
	Store *store.Store

	Firebase  *firebase.App
	backend   storage.Backend
	publisher *redisstore.Publisher
	repo      portfolio.Repository
}

// New opens the configured repository, loads it and provisions the facade.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger, Hub: events.NewHub(logger.Named("events"))}

	if cfg.Store.Source == config.SourceRemote || cfg.Admin.Auth == config.AdminAuthFirebase {
		app, err := auth.NewApp(ctx, &cfg.Firebase)
		if err != nil {
			return nil, err
		}
		a.Firebase = app
	}

	repo, err := a.openRepository(ctx)
	if err != nil {
		return nil, err
	}
	a.repo = portfolio.Notifying(repo, a.hooks()...)

	f, err := portfolio.Provision(ctx, a.repo)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	a.Facade = f
	return a, nil
}

func (a *App) openRepository(ctx context.Context) (portfolio.Repository, error) {
	if a.Config.Store.Source == config.SourceRemote {
		return pfirestore.Open(ctx, a.Firebase, pfirestore.WithLogger(a.Logger.Named("firestore")))
	}

	seed := codec.DefaultSeed()
	if path := a.Config.Store.SeedFile; path != "" {
		s, err := codec.LoadSeedFile(path)
		if err != nil {
			return nil, fmt.Errorf("seed file: %w", err)
		}
		seed = s
	}

	backend, err := OpenBackend(ctx, a.Config)
	if err != nil {
		return nil, err
	}
	a.backend = backend
	if rb, ok := backend.(*redisstore.Backend); ok {
		a.publisher = redisstore.NewPublisher(rb.Client(), a.Config.Redis.KeyPrefix)
	}

	a.Store = store.New(backend,
		store.WithLogger(a.Logger.Named("store")),
		store.WithSeed(seed),
	)
	return a.Store, nil
}

// hooks routes change events to websocket clients. With redis they travel
// through pub/sub so every instance sharing the store sees them; Relay
// feeds them back into the local hub.
func (a *App) hooks() []portfolio.ChangeHook {
	if a.publisher == nil {
		return []portfolio.ChangeHook{a.Hub.Hook()}
	}
	pub, logger := a.publisher, a.Logger
	return []portfolio.ChangeHook{func(ctx context.Context, ev portfolio.ChangeEvent) {
		if err := pub.Publish(context.WithoutCancel(ctx), ev); err != nil {
			logger.Warn("failed to publish change event", zap.Error(err))
		}
	}}
}

// Relay forwards pub/sub events into the hub until ctx ends. It returns
// immediately when events are delivered in-process.
func (a *App) Relay(ctx context.Context) error {
	if a.publisher == nil {
		return nil
	}
	return a.publisher.Subscribe(ctx, a.Hub.Broadcast)
}

// StoreName is reported by the health endpoint.
func (a *App) StoreName() string {
	if a.Config.Store.Source == config.SourceRemote {
		return "firestore"
	}
	return a.Config.Store.Backend
}

// Pinger returns the backend when it can be probed.
func (a *App) Pinger() httpapi.Pinger {
	if p, ok := a.backend.(httpapi.Pinger); ok {
		return p
	}
	return nil
}

// Shutdown flushes local mirrors when configured and releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.Store != nil && a.Config.Store.FlushOnShutdown {
		if err := a.Store.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush: %w", err))
		}
	}
	a.Hub.Close()
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close: %w", err))
		}
	}
	return errors.Join(errs...)
}
