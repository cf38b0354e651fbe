package service

import (
	"context"
	"strings"

	"mediafeed/internal/models"
	"mediafeed/internal/repository"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

type SendMessageInput struct {
	SenderID   uint
	ReceiverID uint
	Body       string
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

const maxMessageLen = 2000

// Send records a direct message. The receiver must exist; the sender is
// trusted from the session. Sending to yourself is allowed and lands in
// the (self, self) conversation.
func (s *MessageService) Send(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if strings.TrimSpace(in.Body) == "" {
		return nil, models.NewValidationError("Message body is required")
	}
	if len(in.Body) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 2000 characters)")
	}

	if _, err := s.userRepo.GetByID(ctx, in.ReceiverID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Body:       in.Body,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetConversation returns the full two-way history between the caller and
// the other user, oldest first.
func (s *MessageService) GetConversation(ctx context.Context, userID, otherUserID uint) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, otherUserID); err != nil {
		return nil, err
	}
	return s.messageRepo.GetConversation(ctx, userID, otherUserID)
}
