package service

import (
	"book-review-api/model"
	"book-review-api/repository"
	"errors"
)

// UserService handles user-related business logic.
type UserService struct {
	userRepo repository.IUserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetAllUsers lists every account, newest first.
func (s *UserService) GetAllUsers() ([]*model.User, error) {
	return s.userRepo.GetAllUsers()
}

// GetUserByID returns a single user.
func (s *UserService) GetUserByID(id int) (*model.User, error) {
	return s.userRepo.GetUserByID(id)
}

// UpdateUserRole validates the role and calls the repository to update it.
// Tokens issued before the change keep the old role until they expire
// or are revoked.
func (s *UserService) UpdateUserRole(userID int, newRole model.Role) error {
	// We ensure that only valid roles can be assigned.
	if newRole != model.RoleAdmin && newRole != model.RoleUser {
		return errors.New("invalid role specified")
	}

	return s.userRepo.UpdateUserRole(userID, string(newRole))
}
