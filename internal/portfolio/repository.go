// Package portfolio defines the collection contracts shared by the local
// entity store and the remote repository, plus the access facade handed to
// request handlers.
package portfolio

import (
	"context"

	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

// Collection is the read and mutate surface of one entity collection.
//
// Update and Delete report found=false when no record carries id; that is not
// an error and nothing is written. A non-nil error alongside found=true means
// the change is visible in memory but did not reach the backing store.
type Collection[T any, P any] interface {
	FetchAll(ctx context.Context) ([]T, error)
	FetchOne(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, patch P) (T, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type (
	Projects    = Collection[domain.Project, domain.ProjectPatch]
	Skills      = Collection[domain.Skill, domain.SkillPatch]
	Experiences = Collection[domain.Experience, domain.ExperiencePatch]
	Messages    = Collection[domain.ContactMessage, domain.MessagePatch]
	Categories  = Collection[domain.Category, domain.CategoryPatch]
)

// Repository bundles the five collections behind one lifecycle.
type Repository interface {
	Projects() Projects
	Skills() Skills
	Experiences() Experiences
	Messages() Messages
	Categories() Categories

	// Load prepares the collections for use. Calling it more than once is
	// harmless.
	Load(ctx context.Context) error
	Close() error
}
