// service/user_service_test.go
package service

import (
	"book-review-api/model"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserService_UpdateUserRole(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("UpdateUserRole", 1, "admin").Return(nil).Once()

		userService := NewUserService(mockRepo)
		err := userService.UpdateUserRole(1, model.RoleAdmin)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		expectedError := errors.New("database error")
		mockRepo.On("UpdateUserRole", 2, "user").Return(expectedError).Once()

		userService := NewUserService(mockRepo)
		err := userService.UpdateUserRole(2, model.RoleUser)

		assert.Error(t, err)
		assert.Equal(t, expectedError, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid role", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		userService := NewUserService(mockRepo)

		err := userService.UpdateUserRole(3, "superuser")

		assert.Error(t, err)
		assert.Equal(t, "invalid role specified", err.Error())
		mockRepo.AssertNotCalled(t, "UpdateUserRole")
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	mockRepo := new(mockUserRepo)
	expected := []*model.User{{ID: 1, Username: "jane"}, {ID: 2, Username: "john"}}
	mockRepo.On("GetAllUsers").Return(expected, nil).Once()

	userService := NewUserService(mockRepo)
	users, err := userService.GetAllUsers()

	assert.NoError(t, err)
	assert.Equal(t, expected, users)
	mockRepo.AssertExpectations(t)
}
