package service

import (
	"context"

	"mediafeed/internal/models"
	"mediafeed/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile looks a user up by username and returns the public
// projection, social id lists included.
func (s *UserService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetProfileByUsername(ctx, username)
}

// Directory lists every registered user as a summary row.
func (s *UserService) Directory(ctx context.Context) ([]models.UserSummary, error) {
	return s.userRepo.ListDirectory(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
