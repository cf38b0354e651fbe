package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediafeed/internal/models"
)

type messageRepoStub struct {
	createFn          func(ctx context.Context, msg *models.Message) error
	getConversationFn func(ctx context.Context, userA, userB uint) ([]*models.Message, error)
}

func (s *messageRepoStub) Create(ctx context.Context, msg *models.Message) error {
	return s.createFn(ctx, msg)
}

func (s *messageRepoStub) GetConversation(ctx context.Context, userA, userB uint) ([]*models.Message, error) {
	return s.getConversationFn(ctx, userA, userB)
}

type userRepoStub struct {
	getByIDFn              func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn           func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn        func(ctx context.Context, username string) (*models.User, error)
	getProfileByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	createFn               func(ctx context.Context, user *models.User) error
	listDirectoryFn        func(ctx context.Context) ([]models.UserSummary, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *userRepoStub) GetProfileByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getProfileByUsernameFn(ctx, username)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) ListDirectory(ctx context.Context) ([]models.UserSummary, error) {
	return s.listDirectoryFn(ctx)
}

func existingUser(id uint) *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, got uint) (*models.User, error) {
			if got == id {
				return &models.User{ID: id}, nil
			}
			return nil, models.NewNotFoundError("User")
		},
	}
}

func TestSendMessage(t *testing.T) {
	t.Parallel()

	t.Run("rejects blank body", func(t *testing.T) {
		t.Parallel()
		svc := NewMessageService(&messageRepoStub{}, existingUser(2))

		_, err := svc.Send(context.Background(), SendMessageInput{
			SenderID:   1,
			ReceiverID: 2,
			Body:       "  \n ",
		})
		assertValidationError(t, err)
	})

	t.Run("unknown receiver is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewMessageService(&messageRepoStub{}, existingUser(2))

		_, err := svc.Send(context.Background(), SendMessageInput{
			SenderID:   1,
			ReceiverID: 99,
			Body:       "hello",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	})

	t.Run("persists sender receiver and body", func(t *testing.T) {
		t.Parallel()
		repo := &messageRepoStub{
			createFn: func(_ context.Context, msg *models.Message) error {
				msg.ID = 10
				return nil
			},
		}
		svc := NewMessageService(repo, existingUser(2))

		msg, err := svc.Send(context.Background(), SendMessageInput{
			SenderID:   1,
			ReceiverID: 2,
			Body:       "hello",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(10), msg.ID)
		assert.Equal(t, uint(1), msg.SenderID)
		assert.Equal(t, uint(2), msg.ReceiverID)
		assert.Equal(t, "hello", msg.Body)
	})

	t.Run("allows messaging yourself", func(t *testing.T) {
		t.Parallel()
		repo := &messageRepoStub{
			createFn: func(_ context.Context, _ *models.Message) error { return nil },
		}
		svc := NewMessageService(repo, existingUser(5))

		_, err := svc.Send(context.Background(), SendMessageInput{
			SenderID:   5,
			ReceiverID: 5,
			Body:       "note to self",
		})
		assert.NoError(t, err)
	})
}

func TestGetConversation(t *testing.T) {
	t.Parallel()

	t.Run("unknown other user is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewMessageService(&messageRepoStub{}, existingUser(2))

		_, err := svc.GetConversation(context.Background(), 1, 99)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	})

	t.Run("passes both participants to the repository", func(t *testing.T) {
		t.Parallel()
		repo := &messageRepoStub{
			getConversationFn: func(_ context.Context, userA, userB uint) ([]*models.Message, error) {
				assert.Equal(t, uint(1), userA)
				assert.Equal(t, uint(2), userB)
				return []*models.Message{{ID: 1, SenderID: 2, ReceiverID: 1, Body: "hey"}}, nil
			},
		}
		svc := NewMessageService(repo, existingUser(2))

		msgs, err := svc.GetConversation(context.Background(), 1, 2)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "hey", msgs[0].Body)
	})
}
