package repository

import (
	"context"
	"testing"
	"time"

	"mediafeed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_Conversation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()

	alice := &models.User{Username: "alice", Email: "a@x.com", FullName: "Alice", Password: "hash"}
	bob := &models.User{Username: "bob", Email: "b@x.com", FullName: "Bob", Password: "hash"}
	carol := &models.User{Username: "carol", Email: "c@x.com", FullName: "Carol", Password: "hash"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)
	require.NoError(t, db.Create(carol).Error)

	base := time.Now().Add(-time.Hour)
	seed := []*models.Message{
		{SenderID: alice.ID, ReceiverID: bob.ID, Body: "hi", CreatedAt: base},
		{SenderID: bob.ID, ReceiverID: alice.ID, Body: "yo", CreatedAt: base.Add(time.Minute)},
		{SenderID: alice.ID, ReceiverID: bob.ID, Body: "how are you", CreatedAt: base.Add(2 * time.Minute)},
		// Noise from a different pair; must never leak into the conversation.
		{SenderID: alice.ID, ReceiverID: carol.ID, Body: "other thread", CreatedAt: base.Add(30 * time.Second)},
	}
	for _, m := range seed {
		require.NoError(t, repo.Create(ctx, m))
	}

	bodies := func(msgs []*models.Message) []string {
		out := make([]string, len(msgs))
		for i, m := range msgs {
			out[i] = m.Body
		}
		return out
	}

	t.Run("ascending creation order", func(t *testing.T) {
		msgs, err := repo.GetConversation(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"hi", "yo", "how are you"}, bodies(msgs))
	})

	t.Run("pair order does not matter", func(t *testing.T) {
		forward, err := repo.GetConversation(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		reverse, err := repo.GetConversation(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, bodies(forward), bodies(reverse))
	})

	t.Run("empty conversation is an empty slice", func(t *testing.T) {
		msgs, err := repo.GetConversation(ctx, bob.ID, carol.ID)
		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	})
}
