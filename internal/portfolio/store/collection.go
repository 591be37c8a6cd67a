package store

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
	"github.com/personalweb/portfolio-backend/internal/storage"
)

// Collection is one in-memory collection of a Store. Every mutator builds a
// new slice, so slices handed out earlier are never modified.
type Collection[T domain.Record[T], P domain.Patch[T]] struct {
	s     *Store
	name  domain.Collection
	seed  []T
	items []T
	// dirty is set while items differ from what the backend last accepted.
	dirty bool
	// fallback is set when Load replaced an unreadable mirror with the seed
	// and no mutation has happened since.
	fallback bool
}

func newCollection[T domain.Record[T], P domain.Patch[T]](s *Store, name domain.Collection, seed []T) *Collection[T, P] {
	return &Collection[T, P]{s: s, name: name, seed: clone(seed), items: clone(seed)}
}

// Initialize reads the collection stored under key. An absent key, malformed
// text or a backend failure all yield seed; only the latter two are logged.
func Initialize[T any](ctx context.Context, backend storage.Backend, key string, seed []T, logger *zap.Logger) []T {
	items, _ := load(ctx, backend, key, seed, logger)
	return items
}

// load is Initialize that also reports whether the stored value was usable.
// An absent key counts as usable.
func load[T any](ctx context.Context, backend storage.Backend, key string, seed []T, logger *zap.Logger) ([]T, bool) {
	text, found, err := backend.Get(ctx, key)
	if err != nil {
		logger.Warn("backing store read failed, using defaults", zap.String("key", key), zap.Error(err))
		return seed, false
	}
	if !found {
		return seed, true
	}
	items, err := codec.Decode[T](text)
	if err != nil {
		logger.Warn("stored collection unreadable, using defaults", zap.String("key", key), zap.Error(err))
		return seed, false
	}
	return items, true
}

func (c *Collection[T, P]) initialize(ctx context.Context) error {
	items, ok := load(ctx, c.s.backend, c.name.StorageKey(), clone(c.seed), c.s.logger)
	c.items = items
	c.fallback = !ok
	return nil
}

func (c *Collection[T, P]) FetchAll(context.Context) ([]T, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return clone(c.items), nil
}

func (c *Collection[T, P]) FetchOne(_ context.Context, id string) (T, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if i := c.index(id); i >= 0 {
		return cloneOne(c.items[i]), nil
	}
	var zero T
	return zero, domain.ErrNotFound
}

// Replace swaps the whole collection and writes it back.
func (c *Collection[T, P]) Replace(ctx context.Context, items []T) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	return c.commit(ctx, clone(items))
}

// Create appends rec under a fresh identifier. Any id on rec is ignored.
func (c *Collection[T, P]) Create(ctx context.Context, rec T) (T, error) {
	rec, err := rec.Prepared()
	if err != nil {
		var zero T
		return zero, err
	}

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	rec = rec.WithID(c.s.ids.NextID()).Stamped(c.s.now())
	next := append(clone(c.items), rec)
	return cloneOne(rec), c.commit(ctx, next)
}

// Update applies patch to the record with id. found is false, and nothing
// is written, when no such record exists.
func (c *Collection[T, P]) Update(ctx context.Context, id string, patch P) (T, bool, error) {
	var zero T

	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return zero, false, nil
	}
	updated, err := domain.ApplyPatch(c.items[i], patch)
	if err != nil {
		return zero, false, err
	}
	updated = updated.WithID(id)

	next := clone(c.items)
	next[i] = updated
	return cloneOne(updated), true, c.commit(ctx, next)
}

func (c *Collection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return false, nil
	}
	next := slices.Delete(clone(c.items), i, i+1)
	return true, c.commit(ctx, next)
}

// commit installs next and mirrors it. Callers hold s.mu.
func (c *Collection[T, P]) commit(ctx context.Context, next []T) error {
	if next == nil {
		next = []T{}
	}
	c.items = next
	c.dirty = true
	c.fallback = false
	return c.persist(ctx)
}

// flush writes the collection only when a mutation has not reached the
// backend yet. Collections that were never mutated are left untouched, so a
// seed used after a failed read never replaces the stored data.
func (c *Collection[T, P]) flush(ctx context.Context) error {
	if !c.dirty {
		return nil
	}
	return c.persist(ctx)
}

// rewrite writes the collection unless it is a seed standing in for a
// mirror that could not be read.
func (c *Collection[T, P]) rewrite(ctx context.Context) error {
	if c.fallback {
		c.s.logger.Warn("skipping rewrite of unread collection", zap.String("collection", string(c.name)))
		return nil
	}
	return c.persist(ctx)
}

func (c *Collection[T, P]) persist(ctx context.Context) error {
	text, err := codec.Encode(c.items)
	if err == nil {
		err = c.s.backend.Set(ctx, c.name.StorageKey(), text)
	}
	if err != nil {
		c.s.logger.Error("failed to persist collection", zap.String("collection", string(c.name)), zap.Error(err))
		return &PersistError{Collection: c.name, Err: err}
	}
	c.dirty = false
	return nil
}

func (c *Collection[T, P]) index(id string) int {
	return slices.IndexFunc(c.items, func(rec T) bool { return rec.RecordID() == id })
}

// clone copies items deeply enough that callers cannot reach the store's
// slices through records holding lists.
func clone[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := slices.Clone(items)
	for i := range out {
		out[i] = cloneOne(out[i])
	}
	return out
}

func cloneOne[T any](rec T) T {
	if c, ok := any(rec).(interface{ Clone() T }); ok {
		return c.Clone()
	}
	return rec
}
