package server

import (
	"mediafeed/internal/models"
	"mediafeed/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /messages/:receiverId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	receiverID, err := s.parseID(c, "receiverId", "receiver ID")
	if err != nil {
		return nil
	}

	var req struct {
		Body string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.messageService.Send(c.Context(), service.SendMessageInput{
		SenderID:   currentUserID(c),
		ReceiverID: receiverID,
		Body:       req.Body,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetConversation handles GET /messages/:otherUserId, returning the two-way
// history between the caller and the other user, oldest first.
func (s *Server) GetConversation(c *fiber.Ctx) error {
	otherUserID, err := s.parseID(c, "otherUserId", "user ID")
	if err != nil {
		return nil
	}

	msgs, err := s.messageService.GetConversation(c.Context(), currentUserID(c), otherUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(msgs)
}
