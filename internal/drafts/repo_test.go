package drafts

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*Repo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRepo(client), mr
}

func TestDraftRepo_SaveAndGet(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, "user-1", "canvas-12345-0001", Draft{
		Name:        "my draft nam",
		Description: "half-typed",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.DraftID)
	assert.False(t, saved.SavedAt.IsZero())

	got, err := repo.Get(ctx, "user-1", "canvas-12345-0001")
	require.NoError(t, err)
	assert.Equal(t, saved.DraftID, got.DraftID)
	assert.Equal(t, "my draft nam", got.Name)
	assert.Equal(t, "half-typed", got.Description)
}

func TestDraftRepo_SaveKeepsDraftID(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	first, err := repo.Save(ctx, "user-1", "new", Draft{Name: "a"})
	require.NoError(t, err)

	second, err := repo.Save(ctx, "user-1", "new", Draft{DraftID: first.DraftID, Name: "ab"})
	require.NoError(t, err)
	assert.Equal(t, first.DraftID, second.DraftID)

	got, err := repo.Get(ctx, "user-1", "new")
	require.NoError(t, err)
	assert.Equal(t, "ab", got.Name)
}

func TestDraftRepo_ScopedPerUserAndProject(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, "user-1", "new", Draft{Name: "mine"})
	require.NoError(t, err)

	_, err = repo.Get(ctx, "user-2", "new")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Get(ctx, "user-1", "canvas-00001-0001")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_Delete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, "user-1", "new", Draft{Name: "gone soon"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, "user-1", "new")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "user-1", "new")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.Get(ctx, "user-1", "new")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDraftRepo_Expires(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, "user-1", "new", Draft{Name: "stale"})
	require.NoError(t, err)

	mr.FastForward(draftTTL + time.Minute)

	_, err = repo.Get(ctx, "user-1", "new")
	assert.ErrorIs(t, err, ErrNotFound)
}
