package service

import (
	"context"
	"regexp"

	"playto/internal/models"
	"playto/internal/repository"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Username    string
	DisplayName string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if !usernamePattern.MatchString(in.Username) {
		return nil, models.NewValidationError("Username must be 3-30 characters (letters, digits, underscore)")
	}

	user := &models.User{
		Username:    in.Username,
		DisplayName: in.DisplayName,
	}
	if user.DisplayName == "" {
		user.DisplayName = in.Username
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}
