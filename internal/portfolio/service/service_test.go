package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
	"github.com/personalweb/portfolio-backend/internal/portfolio/store"
)

type nopBackend struct{}

func (nopBackend) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (nopBackend) Set(context.Context, string, string) error         { return nil }
func (nopBackend) Close() error                                      { return nil }

func setup(t *testing.T, opts ...store.Option) (*PortfolioService, *portfolio.Facade) {
	t.Helper()
	f, err := portfolio.Provision(context.Background(), store.New(nopBackend{}, opts...))
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC) }
	return NewPortfolioService(zap.NewNop(), now), f
}

func TestFeaturedProjects(t *testing.T) {
	svc, f := setup(t)
	ctx := context.Background()

	got, err := svc.FeaturedProjects(ctx, f, HomeFeaturedLimit)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})

	got, err = svc.FeaturedProjects(ctx, f, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestProjectsByCategory(t *testing.T) {
	svc, f := setup(t)
	ctx := context.Background()

	all, err := svc.ProjectsByCategory(ctx, f, "all")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mobile, err := svc.ProjectsByCategory(ctx, f, "mobile")
	require.NoError(t, err)
	require.Len(t, mobile, 1)
	assert.Equal(t, "Fitness Tracker App", mobile[0].Title)

	none, err := svc.ProjectsByCategory(ctx, f, "games")
	require.NoError(t, err)
	assert.Empty(t, none)

	// filtering must not disturb the stored collection
	again, _ := f.Projects().FetchAll(ctx)
	assert.Len(t, again, 4)
}

func TestSkillsByCategory(t *testing.T) {
	svc, f := setup(t)

	groups, err := svc.SkillsByCategory(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, domain.SkillFrontend, groups[0].Category)
	assert.Equal(t, domain.SkillBackend, groups[1].Category)
	assert.Equal(t, domain.SkillTools, groups[2].Category)
	assert.Len(t, groups[0].Skills, 5)
	assert.Len(t, groups[1].Skills, 6)
}

func TestExperiences(t *testing.T) {
	svc, f := setup(t)
	ctx := context.Background()

	edu, err := svc.Experiences(ctx, f, domain.ExperienceEducation)
	require.NoError(t, err)
	require.Len(t, edu, 1)
	assert.Equal(t, "B.Sc. Computer Science", edu[0].Title)

	all, err := svc.Experiences(ctx, f, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestExperiencesNewestStartFirst(t *testing.T) {
	seed := codec.DefaultSeed()
	seed.Experiences = []domain.Experience{
		{ID: "a", Type: domain.ExperienceEducation, StartDate: "2017-09"},
		{ID: "b", Type: domain.ExperienceWork, StartDate: "2023-01"},
		{ID: "c", Type: domain.ExperienceWork, StartDate: "2021-06-15"},
		{ID: "d", Type: domain.ExperienceWork, StartDate: "someday"},
		{ID: "e", Type: domain.ExperienceWork, StartDate: "2023-01-01"},
	}
	svc, f := setup(t, store.WithSeed(seed))
	ctx := context.Background()

	ids := func(es []domain.Experience) []string {
		out := make([]string, len(es))
		for i, e := range es {
			out[i] = e.ID
		}
		return out
	}

	all, err := svc.Experiences(ctx, f, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "e", "c", "a", "d"}, ids(all))

	work, err := svc.Experiences(ctx, f, domain.ExperienceWork)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "e", "c", "d"}, ids(work))
}

func TestMessagesNewestFirst(t *testing.T) {
	seed := codec.DefaultSeed()
	seed.Messages = []domain.ContactMessage{
		{ID: "a", CreatedAt: "2024-01-01T00:00:00.000Z"},
		{ID: "b", CreatedAt: "2024-03-01T00:00:00.000Z"},
		{ID: "c", CreatedAt: "2024-02-01T00:00:00.000Z", Read: true},
	}
	svc, f := setup(t, store.WithSeed(seed))

	got, err := svc.Messages(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})

	d, err := svc.Dashboard(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, Dashboard{Projects: 4, Skills: 15, Experiences: 3, Messages: 3, Unread: 2, Categories: 4}, d)
}

func TestSubmitMessage(t *testing.T) {
	svc, f := setup(t)
	ctx := context.Background()

	msg, err := svc.SubmitMessage(ctx, f, ContactSubmission{
		Name: "Ana", Email: "ana@example.com", Subject: "Work", Message: "Let's talk",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Read)
	assert.Equal(t, "2025-02-03T04:05:06.000Z", msg.CreatedAt)

	all, _ := f.Messages().FetchAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, msg, all[0])

	_, err = svc.SubmitMessage(ctx, f, ContactSubmission{Name: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalid)
}
