package service

import (
	"context"
	"errors"
	"fmt"

	"userhub/internal/http-api/dto"
	"userhub/internal/http-api/models"
	"userhub/internal/http-api/repository"
)

var (
	ErrUsernameInUse = errors.New("username already in use")
	ErrEmailInUse    = errors.New("email already in use")
	ErrUserNotFound  = errors.New("user not found")
)

type UserService interface {
	Create(ctx context.Context, in dto.CreateUserDTO) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, in dto.UpdateUserDTO) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create rejects duplicate usernames before duplicate emails; a payload that
// collides on both reports the username conflict.
func (s *userService) Create(ctx context.Context, in dto.CreateUserDTO) (*models.User, error) {
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user := in.ToModel()
	if err := s.repo.Create(ctx, &user); err != nil {
		// The pre-checks race with concurrent inserts; the unique indexes
		// are the backstop.
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameInUse
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	return s.repo.List(ctx, skip, limit)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update merges only the fields present in the payload onto the stored row.
func (s *userService) Update(ctx context.Context, id int64, in dto.UpdateUserDTO) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	in.ApplyTo(user)

	if err := s.repo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameInUse
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailInUse
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
