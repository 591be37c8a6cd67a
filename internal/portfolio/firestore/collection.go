package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

type collection[T domain.Record[T], P domain.Patch[T]] struct {
	r    *Repository
	name domain.Collection
	// newestFirst orders FetchAll by createdAt descending.
	newestFirst bool
}

func newCollection[T domain.Record[T], P domain.Patch[T]](r *Repository, name domain.Collection, newestFirst bool) *collection[T, P] {
	return &collection[T, P]{r: r, name: name, newestFirst: newestFirst}
}

func (c *collection[T, P]) ref() *firestore.CollectionRef {
	return c.r.client.Collection(string(c.name))
}

func (c *collection[T, P]) FetchAll(ctx context.Context) ([]T, error) {
	q := c.ref().Query
	if c.newestFirst {
		q = q.OrderBy("createdAt", firestore.Desc)
	}
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, c.fail("fetch all", err)
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := decode[T](doc)
		if err != nil {
			return nil, c.fail("fetch all", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *collection[T, P]) FetchOne(ctx context.Context, id string) (T, error) {
	var zero T
	doc, err := c.ref().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return zero, domain.ErrNotFound
	}
	if err != nil {
		return zero, c.fail("fetch", err)
	}
	rec, err := decode[T](doc)
	if err != nil {
		return zero, c.fail("fetch", err)
	}
	return rec, nil
}

// Create lets Firestore assign the document id.
func (c *collection[T, P]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	rec, err := rec.Prepared()
	if err != nil {
		return zero, err
	}
	rec = rec.Stamped(c.r.now())

	doc := c.ref().NewDoc()
	if _, err := doc.Create(ctx, rec); err != nil {
		return zero, c.fail("create", err)
	}
	return rec.WithID(doc.ID), nil
}

func (c *collection[T, P]) Update(ctx context.Context, id string, patch P) (T, bool, error) {
	var (
		updated T
		found   bool
	)
	doc := c.ref().Doc(id)

	err := c.r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		found = false
		snap, err := tx.Get(doc)
		if status.Code(err) == codes.NotFound {
			return nil
		}
		if err != nil {
			return err
		}
		cur, err := decode[T](snap)
		if err != nil {
			return err
		}
		next, err := domain.ApplyPatch(cur, patch)
		if err != nil {
			return err
		}
		found = true
		updated = next.WithID(id)
		return tx.Set(doc, updated)
	})
	if err != nil {
		var zero T
		if errors.Is(err, domain.ErrInvalid) {
			return zero, false, err
		}
		return zero, false, c.fail("update", err)
	}
	return updated, found, nil
}

func (c *collection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	doc := c.ref().Doc(id)
	if _, err := doc.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, c.fail("delete", err)
	}
	if _, err := doc.Delete(ctx); err != nil {
		return false, c.fail("delete", err)
	}
	return true, nil
}

func (c *collection[T, P]) fail(op string, err error) error {
	c.r.logger.Error("firestore request failed",
		zap.String("collection", string(c.name)),
		zap.String("op", op),
		zap.Error(err),
	)
	return &RemoteError{Op: op, Collection: c.name, Err: err}
}

func decode[T domain.Record[T]](doc *firestore.DocumentSnapshot) (T, error) {
	var rec T
	if err := doc.DataTo(&rec); err != nil {
		return rec, fmt.Errorf("decode %s: %w", doc.Ref.Path, err)
	}
	return rec.WithID(doc.Ref.ID), nil
}
