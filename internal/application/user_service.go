package application

import (
	"context"

	"go.uber.org/zap"

	userDomain "github.com/shareit-app/shareit/internal/domain/user"
)

// CreateUserRequest holds the data needed to register a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest carries a partial patch: empty fields leave the
// current value untouched.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserDTO is the response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService implements user CRUD.
type UserService struct {
	repo   userDomain.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo userDomain.Repository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// GetAll returns every registered user.
func (s *UserService) GetAll(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos, nil
}

// GetByID returns a single user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toUserDTO(u)
	return &dto, nil
}

// Create registers a new user. Duplicate emails fail with a conflict.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := userDomain.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, u)
	if err != nil {
		s.logger.Error("failed to save user", zap.Error(err))
		return nil, err
	}
	s.logger.Info("user created", zap.Int64("user_id", saved.ID()))
	dto := toUserDTO(saved)
	return &dto, nil
}

// Update applies a partial patch to a user.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Update(req.Name, req.Email)
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("failed to update user", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info("user updated", zap.Int64("user_id", id))
	dto := toUserDTO(u)
	return &dto, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete user", zap.Int64("user_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return nil
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}
