// Package store keeps the portfolio collections in memory and mirrors every
// change into a key/value backend. Memory is authoritative once loaded; the
// backend is only read at Load.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
	"github.com/personalweb/portfolio-backend/internal/storage"
)

var ErrPersist = errors.New("failed to persist collection")

// PersistError reports a mutation that was applied in memory but could not
// be written to the backend. It matches both ErrPersist and the cause.
type PersistError struct {
	Collection domain.Collection
	Err        error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Collection, e.Err)
}

func (e *PersistError) Unwrap() []error { return []error{ErrPersist, e.Err} }

// Store implements portfolio.Repository over a storage.Backend.
//
// All mutations and their write-backs run under one mutex, so writes reach
// the backend in mutation order. Two processes sharing a backend still
// overwrite each other: the last full-collection write wins.
type Store struct {
	backend storage.Backend
	logger  *zap.Logger
	now     func() time.Time
	ids     IDGenerator
	seed    codec.Seed

	mu   sync.Mutex
	once sync.Once

	projects    *Collection[domain.Project, domain.ProjectPatch]
	skills      *Collection[domain.Skill, domain.SkillPatch]
	experiences *Collection[domain.Experience, domain.ExperiencePatch]
	messages    *Collection[domain.ContactMessage, domain.MessagePatch]
	categories  *Collection[domain.Category, domain.CategoryPatch]
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDs(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithSeed replaces the built-in defaults used for collections that have no
// readable mirror.
func WithSeed(seed codec.Seed) Option {
	return func(s *Store) { s.seed = seed }
}

func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  zap.NewNop(),
		now:     time.Now,
		seed:    codec.DefaultSeed(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewTimestampIDs(s.now)
	}

	s.projects = newCollection[domain.Project, domain.ProjectPatch](s, domain.CollectionProjects, s.seed.Projects)
	s.skills = newCollection[domain.Skill, domain.SkillPatch](s, domain.CollectionSkills, s.seed.Skills)
	s.experiences = newCollection[domain.Experience, domain.ExperiencePatch](s, domain.CollectionExperiences, s.seed.Experiences)
	s.messages = newCollection[domain.ContactMessage, domain.MessagePatch](s, domain.CollectionMessages, s.seed.Messages)
	s.categories = newCollection[domain.Category, domain.CategoryPatch](s, domain.CollectionCategories, s.seed.Categories)
	return s
}

// Load reads all five collections from the backend once per Store. It never
// fails: unreadable collections keep their seed.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return s.projects.initialize(gctx) })
		g.Go(func() error { return s.skills.initialize(gctx) })
		g.Go(func() error { return s.experiences.initialize(gctx) })
		g.Go(func() error { return s.messages.initialize(gctx) })
		g.Go(func() error { return s.categories.initialize(gctx) })
		_ = g.Wait()

		s.logger.Info("portfolio loaded",
			zap.Int("projects", len(s.projects.items)),
			zap.Int("skills", len(s.skills.items)),
			zap.Int("experiences", len(s.experiences.items)),
			zap.Int("messages", len(s.messages.items)),
			zap.Int("categories", len(s.categories.items)),
		)
	})
	return nil
}

func (s *Store) Projects() portfolio.Projects       { return s.projects }
func (s *Store) Skills() portfolio.Skills           { return s.skills }
func (s *Store) Experiences() portfolio.Experiences { return s.experiences }
func (s *Store) Messages() portfolio.Messages       { return s.messages }
func (s *Store) Categories() portfolio.Categories   { return s.categories }

// Typed accessors expose Replace, which is not part of portfolio.Collection.

func (s *Store) ProjectStore() *Collection[domain.Project, domain.ProjectPatch] { return s.projects }
func (s *Store) SkillStore() *Collection[domain.Skill, domain.SkillPatch]       { return s.skills }
func (s *Store) ExperienceStore() *Collection[domain.Experience, domain.ExperiencePatch] {
	return s.experiences
}
func (s *Store) MessageStore() *Collection[domain.ContactMessage, domain.MessagePatch] {
	return s.messages
}
func (s *Store) CategoryStore() *Collection[domain.Category, domain.CategoryPatch] {
	return s.categories
}

// ReplaceAll swaps in every collection of seed and writes each one back.
func (s *Store) ReplaceAll(ctx context.Context, seed codec.Seed) error {
	return errors.Join(
		s.projects.Replace(ctx, seed.Projects),
		s.skills.Replace(ctx, seed.Skills),
		s.experiences.Replace(ctx, seed.Experiences),
		s.messages.Replace(ctx, seed.Messages),
		s.categories.Replace(ctx, seed.Categories),
	)
}

// Snapshot copies the current state of every collection.
func (s *Store) Snapshot() codec.Seed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return codec.Seed{
		Projects:    clone(s.projects.items),
		Skills:      clone(s.skills.items),
		Experiences: clone(s.experiences.items),
		Messages:    clone(s.messages.items),
		Categories:  clone(s.categories.items),
	}
}

// Flush rewrites the collections whose last write-back failed, healing
// their mirrors. Collections in sync with the backend are not written.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(
		s.projects.flush(ctx),
		s.skills.flush(ctx),
		s.experiences.flush(ctx),
		s.messages.flush(ctx),
		s.categories.flush(ctx),
	)
}

// Rewrite writes every collection back in the current encoding, including
// seeds for keys that were absent. Collections whose mirror could not be
// read at Load keep their stored value until they are mutated.
func (s *Store) Rewrite(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(
		s.projects.rewrite(ctx),
		s.skills.rewrite(ctx),
		s.experiences.rewrite(ctx),
		s.messages.rewrite(ctx),
		s.categories.rewrite(ctx),
	)
}

func (s *Store) Close() error {
	return s.backend.Close()
}

var _ portfolio.Repository = (*Store)(nil)
