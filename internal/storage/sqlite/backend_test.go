package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "portfolio.db")

	b, err := Open(ctx, path)
	require.NoError(t, err)

	_, found, err := b.Get(ctx, "portfolio_skills")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, b.Set(ctx, "portfolio_skills", `[{"id":"1"}]`))
	require.NoError(t, b.Set(ctx, "portfolio_skills", `[{"id":"2"}]`))
	require.NoError(t, b.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, found, err := reopened.Get(ctx, "portfolio_skills")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"2"}]`, v)
}
