package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/daniilsolovey/blogicum/internal/blogtest"
)

func run(t *testing.T, store *blogtest.Store, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&runtime{store: store})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCategoryAdd(t *testing.T) {
	store := blogtest.NewStore()

	out, err := run(t, store, "category", "add", "--title", "Street Food", "--description", "Eat")
	require.NoError(t, err)
	assert.Contains(t, out, `slug "street-food"`)

	category, err := store.CategoryBySlug(context.Background(), "street-food", true)
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, "Eat", category.Description)

	_, err = run(t, store, "category", "add", "--title", "Again", "--slug", "street-food")
	var vErr *blog.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = run(t, store, "category", "add")
	assert.Error(t, err, "title is required")
}

func TestCategoryPublish(t *testing.T) {
	store := blogtest.NewStore()

	_, err := run(t, store, "category", "add", "--title", "Drafts", "--unpublished")
	require.NoError(t, err)

	category, err := store.CategoryBySlug(context.Background(), "drafts", true)
	require.NoError(t, err)
	assert.Nil(t, category)

	out, err := run(t, store, "category", "publish", "drafts")
	require.NoError(t, err)
	assert.Contains(t, out, `category "drafts" published`)

	category, err = store.CategoryBySlug(context.Background(), "drafts", true)
	require.NoError(t, err)
	assert.NotNil(t, category)

	_, err = run(t, store, "category", "unpublish", "drafts")
	require.NoError(t, err)

	_, err = run(t, store, "category", "publish", "missing")
	assert.ErrorIs(t, err, blog.ErrNotFound)

	_, err = run(t, store, "category", "publish")
	assert.Error(t, err)
}

func TestLocationAdd(t *testing.T) {
	store := blogtest.NewStore()

	out, err := run(t, store, "location", "add", "--name", "Moscow")
	require.NoError(t, err)
	assert.Contains(t, out, `location "Moscow" created`)

	locations, err := store.Locations(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Moscow", locations[0].Name)
}
