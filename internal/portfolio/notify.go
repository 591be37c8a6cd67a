package portfolio

import (
	"context"
	"time"

	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent describes one applied mutation.
type ChangeEvent struct {
	Collection domain.Collection `json:"collection"`
	Action     Action            `json:"action"`
	ID         string            `json:"id"`
	At         time.Time         `json:"at"`
}

type ChangeHook func(ctx context.Context, ev ChangeEvent)

// Notifying wraps repo so that every applied change is reported to hooks.
// A change counts as applied once it is visible in memory, even if mirroring
// it to the backing store failed. Rejected input and absent ids emit nothing.
func Notifying(repo Repository, hooks ...ChangeHook) Repository {
	if len(hooks) == 0 {
		return repo
	}
	return &notifying{Repository: repo, hooks: hooks, now: time.Now}
}

type notifying struct {
	Repository
	hooks []ChangeHook
	now   func() time.Time
}

func (n *notifying) emit(ctx context.Context, coll domain.Collection, action Action, id string) {
	ev := ChangeEvent{Collection: coll, Action: action, ID: id, At: n.now().UTC()}
	for _, h := range n.hooks {
		h(ctx, ev)
	}
}

func (n *notifying) Projects() Projects {
	return wrap[domain.Project](n.Repository.Projects(), domain.CollectionProjects, n)
}

func (n *notifying) Skills() Skills {
	return wrap[domain.Skill](n.Repository.Skills(), domain.CollectionSkills, n)
}

func (n *notifying) Experiences() Experiences {
	return wrap[domain.Experience](n.Repository.Experiences(), domain.CollectionExperiences, n)
}

func (n *notifying) Messages() Messages {
	return wrap[domain.ContactMessage](n.Repository.Messages(), domain.CollectionMessages, n)
}

func (n *notifying) Categories() Categories {
	return wrap[domain.Category](n.Repository.Categories(), domain.CollectionCategories, n)
}

func wrap[T interface{ RecordID() string }, P any](inner Collection[T, P], coll domain.Collection, n *notifying) Collection[T, P] {
	return &notifyingCollection[T, P]{Collection: inner, coll: coll, n: n}
}

type notifyingCollection[T interface{ RecordID() string }, P any] struct {
	Collection[T, P]
	coll domain.Collection
	n    *notifying
}

func (c *notifyingCollection[T, P]) Create(ctx context.Context, rec T) (T, error) {
	out, err := c.Collection.Create(ctx, rec)
	if id := out.RecordID(); id != "" {
		c.n.emit(ctx, c.coll, ActionCreated, id)
	}
	return out, err
}

func (c *notifyingCollection[T, P]) Update(ctx context.Context, id string, patch P) (T, bool, error) {
	out, found, err := c.Collection.Update(ctx, id, patch)
	if found {
		c.n.emit(ctx, c.coll, ActionUpdated, id)
	}
	return out, found, err
}

func (c *notifyingCollection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	found, err := c.Collection.Delete(ctx, id)
	if found {
		c.n.emit(ctx, c.coll, ActionDeleted, id)
	}
	return found, err
}
