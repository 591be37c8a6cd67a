// Package service holds the read models and the contact-form flow the site
// pages are built from.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
)

// HomeFeaturedLimit is how many featured projects the home page shows.
const HomeFeaturedLimit = 3

type PortfolioService struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewPortfolioService(logger *zap.Logger, now func() time.Time) *PortfolioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &PortfolioService{logger: logger, now: now}
}

// FeaturedProjects returns up to limit featured projects in collection
// order. A limit <= 0 returns all of them.
func (s *PortfolioService) FeaturedProjects(ctx context.Context, f *portfolio.Facade, limit int) ([]domain.Project, error) {
	all, err := f.Projects().FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(all))
	for _, p := range all {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ProjectsByCategory filters by category slug; "" and "all" match everything.
func (s *PortfolioService) ProjectsByCategory(ctx context.Context, f *portfolio.Facade, slug string) ([]domain.Project, error) {
	all, err := f.Projects().FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	slug = strings.TrimSpace(slug)
	if slug == "" || slug == "all" {
		return all, nil
	}
	return slices.DeleteFunc(all, func(p domain.Project) bool { return p.Category != slug }), nil
}

type SkillGroup struct {
	Category domain.SkillCategory `json:"category"`
	Skills   []domain.Skill       `json:"skills"`
}

// SkillsByCategory groups skills in the fixed category order. Empty groups
// are left out.
func (s *PortfolioService) SkillsByCategory(ctx context.Context, f *portfolio.Facade) ([]SkillGroup, error) {
	all, err := f.Skills().FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]SkillGroup, 0, len(domain.SkillCategories))
	for _, cat := range domain.SkillCategories {
		var members []domain.Skill
		for _, sk := range all {
			if sk.Category == cat {
				members = append(members, sk)
			}
		}
		if len(members) > 0 {
			groups = append(groups, SkillGroup{Category: cat, Skills: members})
		}
	}
	return groups, nil
}

// Experiences returns the timeline newest start date first, optionally
// filtered by type. Unparseable dates sort last.
func (s *PortfolioService) Experiences(ctx context.Context, f *portfolio.Facade, typ domain.ExperienceType) ([]domain.Experience, error) {
	all, err := f.Experiences().FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if typ != "" {
		all = slices.DeleteFunc(all, func(e domain.Experience) bool { return e.Type != typ })
	}
	slices.SortStableFunc(all, func(a, b domain.Experience) int {
		return startOf(b).Compare(startOf(a))
	})
	return all, nil
}

func startOf(e domain.Experience) time.Time {
	t, err := domain.ParseDate(e.StartDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Messages returns the inbox newest first.
func (s *PortfolioService) Messages(ctx context.Context, f *portfolio.Facade) ([]domain.ContactMessage, error) {
	all, err := f.Messages().FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(all, func(a, b domain.ContactMessage) int {
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})
	return all, nil
}

type Dashboard struct {
	Projects    int `json:"projects"`
	Skills      int `json:"skills"`
	Experiences int `json:"experiences"`
	Messages    int `json:"messages"`
	Unread      int `json:"unread"`
	Categories  int `json:"categories"`
}

func (s *PortfolioService) Dashboard(ctx context.Context, f *portfolio.Facade) (Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		all, err := f.Projects().FetchAll(ctx)
		d.Projects = len(all)
		return err
	})
	g.Go(func() error {
		all, err := f.Skills().FetchAll(ctx)
		d.Skills = len(all)
		return err
	})
	g.Go(func() error {
		all, err := f.Experiences().FetchAll(ctx)
		d.Experiences = len(all)
		return err
	})
	g.Go(func() error {
		all, err := f.Categories().FetchAll(ctx)
		d.Categories = len(all)
		return err
	})
	g.Go(func() error {
		all, err := f.Messages().FetchAll(ctx)
		d.Messages = len(all)
		for _, m := range all {
			if !m.Read {
				d.Unread++
			}
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return d, nil
}

// ContactSubmission is what the public contact form posts.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitMessage stores a new unread message stamped with the current time.
func (s *PortfolioService) SubmitMessage(ctx context.Context, f *portfolio.Facade, in ContactSubmission) (domain.ContactMessage, error) {
	msg, err := f.Messages().Create(ctx, domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now().UTC().Format(domain.TimestampLayout),
		Read:      false,
	})
	if err != nil {
		if msg.ID != "" {
			s.logger.Warn("contact message kept in memory only", zap.String("id", msg.ID), zap.Error(err))
		}
		return msg, err
	}
	s.logger.Info("contact message received", zap.String("id", msg.ID), zap.String("subject", msg.Subject))
	return msg, nil
}
