// Package firestore serves the portfolio collections straight from Cloud
// Firestore. Every call is a remote round trip; nothing is cached.
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

// Repository implements portfolio.Repository on top of a Firestore client.
type Repository struct {
	client *firestore.Client
	logger *zap.Logger
	now    func() time.Time

	projects    *collection[domain.Project, domain.ProjectPatch]
	skills      *collection[domain.Skill, domain.SkillPatch]
	experiences *collection[domain.Experience, domain.ExperiencePatch]
	messages    *collection[domain.ContactMessage, domain.MessagePatch]
	categories  *collection[domain.Category, domain.CategoryPatch]
}

type Option func(*Repository)

func WithLogger(l *zap.Logger) Option {
	return func(r *Repository) { r.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// Open obtains a Firestore client from an initialized Firebase app.
func Open(ctx context.Context, app *firebase.App, opts ...Option) (*Repository, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}
	return New(client, opts...), nil
}

func New(client *firestore.Client, opts ...Option) *Repository {
	r := &Repository{client: client, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	r.projects = newCollection[domain.Project, domain.ProjectPatch](r, domain.CollectionProjects, false)
	r.skills = newCollection[domain.Skill, domain.SkillPatch](r, domain.CollectionSkills, false)
	r.experiences = newCollection[domain.Experience, domain.ExperiencePatch](r, domain.CollectionExperiences, false)
	r.messages = newCollection[domain.ContactMessage, domain.MessagePatch](r, domain.CollectionMessages, true)
	r.categories = newCollection[domain.Category, domain.CategoryPatch](r, domain.CollectionCategories, false)
	return r
}

func (r *Repository) Projects() portfolio.Projects       { return r.projects }
func (r *Repository) Skills() portfolio.Skills           { return r.skills }
func (r *Repository) Experiences() portfolio.Experiences { return r.experiences }
func (r *Repository) Messages() portfolio.Messages       { return r.messages }
func (r *Repository) Categories() portfolio.Categories   { return r.categories }

// Load has nothing to prime; the remote store is always authoritative.
func (r *Repository) Load(context.Context) error { return nil }

func (r *Repository) Close() error {
	return r.client.Close()
}

var _ portfolio.Repository = (*Repository)(nil)
