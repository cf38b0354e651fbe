package repository

import (
	"context"
	"testing"

	"mediafeed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := &models.User{Username: "alice", Email: "a@x.com", FullName: "Alice", Password: "hash"}
	bob := &models.User{Username: "bob", Email: "b@x.com", FullName: "Bob", Password: "hash"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)

	post := &models.Post{Title: "clip", MediaURL: "http://x/y.mp4", UserID: alice.ID}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	t.Run("created post listed exactly once for its owner", func(t *testing.T) {
		posts, err := repo.ListByOwner(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, post.ID, posts[0].ID)
	})

	t.Run("owner scoping excludes other users", func(t *testing.T) {
		posts, err := repo.ListByOwner(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("feed preloads owners in insertion order", func(t *testing.T) {
		second := &models.Post{Title: "pic", MediaURL: "http://x/z.png", UserID: bob.ID}
		require.NoError(t, repo.Create(ctx, second))

		feed, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, feed, 2)
		assert.Equal(t, post.ID, feed[0].ID)
		assert.Equal(t, second.ID, feed[1].ID)
		require.NotNil(t, feed[0].User)
		assert.Equal(t, "alice", feed[0].User.Username)
	})

	t.Run("update persists patch", func(t *testing.T) {
		post.Title = "renamed"
		require.NoError(t, repo.Update(ctx, post))

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Title)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, post.ID))

		_, err := repo.GetByID(ctx, post.ID)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	})
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
}
