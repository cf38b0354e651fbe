package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /users, the public directory used by the
// conversation picker.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.Directory(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile handles GET /users/:username
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userService.GetProfile(c.Context(), username)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
