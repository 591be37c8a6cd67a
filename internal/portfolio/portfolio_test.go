package portfolio_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personalweb/portfolio-backend/internal/portfolio"
	"github.com/personalweb/portfolio-backend/internal/portfolio/domain"
	"github.com/personalweb/portfolio-backend/internal/portfolio/store"
)

type nopBackend struct{}

func (nopBackend) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (nopBackend) Set(context.Context, string, string) error         { return nil }
func (nopBackend) Close() error                                      { return nil }

type failingBackend struct{ nopBackend }

func (failingBackend) Set(context.Context, string, string) error { return errors.New("write refused") }

func TestAccess_OutsideScope(t *testing.T) {
	_, err := portfolio.Access(context.Background())
	assert.ErrorIs(t, err, portfolio.ErrOutsideScope)
	assert.EqualError(t, err, "portfolio facade used outside provisioned scope")

	assert.Panics(t, func() { portfolio.MustAccess(context.Background()) })
}

func TestProvision_ScopeAndMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	f, err := portfolio.Provision(ctx, store.New(nopBackend{}))
	require.NoError(t, err)

	got, err := portfolio.Access(f.Scope(ctx))
	require.NoError(t, err)
	assert.Same(t, f, got)

	r := gin.New()
	r.Use(f.Middleware())
	r.GET("/n", func(c *gin.Context) {
		cats, err := portfolio.MustAccess(c.Request.Context()).Categories().FetchAll(c.Request.Context())
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"n": len(cats)})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/n", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"n":4}`, w.Body.String())
}

func TestProvision_NilRepository(t *testing.T) {
	_, err := portfolio.Provision(context.Background(), nil)
	assert.Error(t, err)
}

func TestNotifying(t *testing.T) {
	ctx := context.Background()

	var events []portfolio.ChangeEvent
	hook := func(_ context.Context, ev portfolio.ChangeEvent) { events = append(events, ev) }

	repo := portfolio.Notifying(store.New(nopBackend{}), hook)
	require.NoError(t, repo.Load(ctx))

	created, err := repo.Categories().Create(ctx, domain.Category{Name: "Games"})
	require.NoError(t, err)

	name := "Gaming"
	_, found, err := repo.Categories().Update(ctx, created.ID, domain.CategoryPatch{Name: &name})
	require.NoError(t, err)
	require.True(t, found)

	// absent ids and rejected input emit nothing
	_, _, _ = repo.Categories().Update(ctx, "missing", domain.CategoryPatch{Name: &name})
	_, _ = repo.Categories().Delete(ctx, "missing")
	_, _ = repo.Skills().Create(ctx, domain.Skill{})

	found, err = repo.Categories().Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)

	require.Len(t, events, 3)
	assert.Equal(t, portfolio.ActionCreated, events[0].Action)
	assert.Equal(t, portfolio.ActionUpdated, events[1].Action)
	assert.Equal(t, portfolio.ActionDeleted, events[2].Action)
	for _, ev := range events {
		assert.Equal(t, domain.CollectionCategories, ev.Collection)
		assert.Equal(t, created.ID, ev.ID)
		assert.False(t, ev.At.IsZero())
	}
}

func TestNotifying_EmitsOnPersistFailure(t *testing.T) {
	ctx := context.Background()

	var n int
	repo := portfolio.Notifying(store.New(failingBackend{}), func(context.Context, portfolio.ChangeEvent) { n++ })
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Messages().Create(ctx, domain.ContactMessage{Name: "a", Email: "a@b.co", Subject: "s", Message: "m"})
	assert.ErrorIs(t, err, store.ErrPersist)
	assert.Equal(t, 1, n)
}

func TestNotifying_NoHooksReturnsRepo(t *testing.T) {
	repo := store.New(nopBackend{})
	assert.Same(t, repo, portfolio.Notifying(repo))
}
