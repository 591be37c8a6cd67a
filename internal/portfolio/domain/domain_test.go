package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Machine Learning":   "machine-learning",
		"  Web  ":            "web",
		"AI /  ML":           "ai-/-ml",
		"Cloud\tNative Apps": "cloud-native-apps",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestCategory_Prepared(t *testing.T) {
	t.Run("derives slug from name", func(t *testing.T) {
		c, err := Category{Name: "Machine Learning"}.Prepared()
		require.NoError(t, err)
		assert.Equal(t, "machine-learning", c.Slug)
	})

	t.Run("keeps explicit slug", func(t *testing.T) {
		c, err := Category{Name: "AI / ML", Slug: "ai"}.Prepared()
		require.NoError(t, err)
		assert.Equal(t, "ai", c.Slug)
	})

	t.Run("patch with empty slug re-derives", func(t *testing.T) {
		name, slug := "Data Engineering", ""
		c, err := CategoryPatch{Name: &name, Slug: &slug}.Apply(Category{Name: "Data", Slug: "data"}).Prepared()
		require.NoError(t, err)
		assert.Equal(t, "data-engineering", c.Slug)
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := Category{}.Prepared()
		assert.True(t, errors.Is(err, ErrInvalid))
	})
}

func TestSkill_Prepared(t *testing.T) {
	_, err := Skill{Name: "Go", Category: SkillBackend, Level: 65}.Prepared()
	require.NoError(t, err)

	_, err = Skill{Name: "Go", Category: SkillBackend, Level: 101}.Prepared()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "level", verr.Field)

	_, err = Skill{Name: "Go", Category: "Databases", Level: 50}.Prepared()
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Skill{Name: "Go", Category: SkillBackend, Level: -1}.Prepared()
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestExperience_Prepared(t *testing.T) {
	base := Experience{Type: ExperienceWork, Title: "Engineer", Organization: "Acme", StartDate: "2021-06"}

	t.Run("current clears end date", func(t *testing.T) {
		e := base
		e.Current = true
		e.EndDate = "2022-01"
		got, err := e.Prepared()
		require.NoError(t, err)
		assert.Empty(t, got.EndDate)
	})

	t.Run("rejects malformed start date", func(t *testing.T) {
		e := base
		e.StartDate = "June 2021"
		_, err := e.Prepared()
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		e := base
		e.EndDate = "2020-01"
		_, err := e.Prepared()
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("accepts day dates", func(t *testing.T) {
		e := base
		e.StartDate = "2023-01-15"
		e.EndDate = "2024-02-29"
		got, err := e.Prepared()
		require.NoError(t, err)
		assert.Equal(t, "2023-01-15", got.StartDate)
	})

	t.Run("mixes month and day layouts", func(t *testing.T) {
		e := base
		e.StartDate = "2021-06-20"
		e.EndDate = "2022-01"
		_, err := e.Prepared()
		require.NoError(t, err)

		e.EndDate = "2021-06-01"
		_, err = e.Prepared()
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rejects impossible day", func(t *testing.T) {
		e := base
		e.StartDate = "2023-02-30"
		_, err := e.Prepared()
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		e := base
		e.Type = "volunteer"
		_, err := e.Prepared()
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestContactMessage_Prepared(t *testing.T) {
	m := ContactMessage{Name: "Ana", Email: "a@x.com", Subject: "Hi", Message: "Hello"}
	_, err := m.Prepared()
	require.NoError(t, err)

	m.Email = "not-an-email"
	_, err = m.Prepared()
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestProject_PreparedCompactsLists(t *testing.T) {
	p, err := Project{Title: " Site ", TechStack: []string{"Go", " ", " React "}}.Prepared()
	require.NoError(t, err)
	assert.Equal(t, "Site", p.Title)
	assert.Equal(t, []string{"Go", "React"}, p.TechStack)
	assert.Nil(t, p.Features)
}

func TestPatch_LastWriteWinsPerField(t *testing.T) {
	orig := Skill{ID: "1", Name: "Go", Category: SkillBackend, Level: 50}
	first, second := 60, 90
	icon := "go.svg"

	got := SkillPatch{Level: &first, Icon: &icon}.Apply(orig)
	got = SkillPatch{Level: &second}.Apply(got)

	assert.Equal(t, 90, got.Level)
	assert.Equal(t, "go.svg", got.Icon)
	assert.Equal(t, "Go", got.Name)
	assert.Equal(t, 50, orig.Level)
}

func TestApplyPatch(t *testing.T) {
	t.Run("description patch on a day-dated experience", func(t *testing.T) {
		orig := Experience{ID: "x", Type: ExperienceWork, Title: "Dev", Organization: "Acme", StartDate: "2023-01-15"}
		desc := "Shipped things"
		got, err := ApplyPatch(orig, ExperiencePatch{Description: &desc})
		require.NoError(t, err)
		assert.Equal(t, "Shipped things", got.Description)
		assert.Equal(t, "2023-01-15", got.StartDate)
	})

	t.Run("current clears the stored end date", func(t *testing.T) {
		orig := Experience{Type: ExperienceWork, Title: "Dev", Organization: "Acme", StartDate: "2023-01", EndDate: "2024-01"}
		current := true
		got, err := ApplyPatch(orig, ExperiencePatch{Current: &current})
		require.NoError(t, err)
		assert.True(t, got.Current)
		assert.Empty(t, got.EndDate)
	})

	t.Run("unnamed fields are kept verbatim", func(t *testing.T) {
		orig := Project{Title: " Site ", TechStack: []string{" Go ", ""}, Category: " web "}
		featured := true
		got, err := ApplyPatch(orig, ProjectPatch{Featured: &featured})
		require.NoError(t, err)
		assert.Equal(t, Project{Title: " Site ", TechStack: []string{" Go ", ""}, Category: " web ", Featured: true}, got)
	})

	t.Run("named fields are normalized", func(t *testing.T) {
		stack := []string{"Go", " ", "Redis "}
		got, err := ApplyPatch(Project{Title: "Site"}, ProjectPatch{TechStack: &stack})
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "Redis"}, got.TechStack)
	})

	t.Run("category slug derived when missing", func(t *testing.T) {
		name := "Data Engineering"
		got, err := ApplyPatch(Category{Name: "Data", Slug: "data"}, CategoryPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "data", got.Slug)

		got, err = ApplyPatch(Category{Name: "Data"}, CategoryPatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "data-engineering", got.Slug)
	})

	t.Run("invalid result is rejected", func(t *testing.T) {
		level := 150
		_, err := ApplyPatch(Skill{Name: "Go", Category: SkillBackend}, SkillPatch{Level: &level})
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestProject_Clone(t *testing.T) {
	p := Project{TechStack: []string{"Go"}, Features: []string{}}
	c := p.Clone()
	c.TechStack[0] = "Rust"
	assert.Equal(t, "Go", p.TechStack[0])
	assert.NotNil(t, c.Features)
	assert.Nil(t, Project{}.Clone().TechStack)
}

func TestStamped(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "2025-03-04T05:06:07.000Z", Project{}.Stamped(now).CreatedAt)
	assert.Equal(t, "2024-01-01", ContactMessage{CreatedAt: "2024-01-01"}.Stamped(now).CreatedAt)
}

func TestDefaultsAreValidAndFresh(t *testing.T) {
	for _, s := range DefaultSkills() {
		_, err := s.Prepared()
		require.NoError(t, err, s.Name)
	}
	for _, e := range DefaultExperiences() {
		_, err := e.Prepared()
		require.NoError(t, err, e.Title)
	}

	a := DefaultProjects()
	a[0].Title = "changed"
	assert.Equal(t, "E-Commerce Platform", DefaultProjects()[0].Title)
	assert.NotNil(t, DefaultMessages())
}

func TestCollection_StorageKey(t *testing.T) {
	assert.Equal(t, "portfolio_projects", CollectionProjects.StorageKey())
	assert.True(t, CollectionMessages.Valid())
	assert.False(t, Collection("users").Valid())
}
