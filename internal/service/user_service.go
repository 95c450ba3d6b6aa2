package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"garage/internal/auth"
	apperrors "garage/internal/errors"
	"garage/internal/model"
	"garage/internal/repository"
	"garage/internal/validation"
)

// UserService manages shop user accounts. Payloads arrive already validated;
// the service owns hashing and uniqueness handling.
type UserService interface {
	Create(ctx context.Context, payload *validation.UserCreate) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context, skip, limit int) ([]model.User, error)
	Update(ctx context.Context, id uint, payload *validation.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	users repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, payload *validation.UserCreate) (*model.User, error) {
	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     payload.Username,
		PasswordHash: hash,
		Role:         payload.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, skip, limit int) ([]model.User, error) {
	return s.users.List(ctx, skip, limit)
}

func (s *userService) Update(ctx context.Context, id uint, payload *validation.UserUpdate) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Username != nil {
		user.Username = *payload.Username
	}
	if payload.Password != nil {
		hash, err := auth.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if payload.Role != nil {
		user.Role = *payload.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
