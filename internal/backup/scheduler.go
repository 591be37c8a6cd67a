// Package backup periodically snapshots the portfolio to a sink.
package backup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
)

const runTimeout = 2 * time.Minute

// SnapshotFunc captures the current state of every collection.
type SnapshotFunc func(ctx context.Context) (codec.Seed, error)

// FacadeSnapshot reads all collections through f concurrently.
func FacadeSnapshot(f *portfolio.Facade) SnapshotFunc {
	return func(ctx context.Context) (codec.Seed, error) {
		var s codec.Seed
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) { s.Projects, err = f.Projects().FetchAll(ctx); return })
		g.Go(func() (err error) { s.Skills, err = f.Skills().FetchAll(ctx); return })
		g.Go(func() (err error) { s.Experiences, err = f.Experiences().FetchAll(ctx); return })
		g.Go(func() (err error) { s.Messages, err = f.Messages().FetchAll(ctx); return })
		g.Go(func() (err error) { s.Categories, err = f.Categories().FetchAll(ctx); return })
		if err := g.Wait(); err != nil {
			return codec.Seed{}, err
		}
		return s, nil
	}
}

type Scheduler struct {
	spec     string
	snapshot SnapshotFunc
	sink     Sink
	logger   *zap.Logger
	now      func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

// NewScheduler runs backups on spec, a six-field cron expression with a
// leading seconds field.
func NewScheduler(spec string, snapshot SnapshotFunc, sink Sink, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{spec: spec, snapshot: snapshot, sink: sink, logger: logger, now: time.Now}
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Error("backup failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create backup job: %w", err)
	}

	c.Start()
	s.cron = c
	s.logger.Info("backup scheduler started", zap.String("schedule", s.spec), zap.String("sink", s.sink.Name()))
	return nil
}

// Stop waits for a running backup to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// RunOnce takes one snapshot and writes it, returning the object name.
func (s *Scheduler) RunOnce(ctx context.Context) (string, error) {
	seed, err := s.snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	name := ObjectName(s.now())
	if err := s.sink.Write(ctx, name, seed); err != nil {
		return "", fmt.Errorf("write %s to %s: %w", name, s.sink.Name(), err)
	}
	s.logger.Info("backup written", zap.String("name", name), zap.String("sink", s.sink.Name()))
	return name, nil
}

func ObjectName(at time.Time) string {
	return "portfolio-" + at.UTC().Format("20060102T150405Z") + ".yaml"
}
