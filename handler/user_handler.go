package handler

import (
	"book-review-api/common"
	"book-review-api/logger"
	"book-review-api/model"
	"book-review-api/service"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// UserHandler serves the admin-only user management routes.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// @Summary      List all user accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.User
// @Router       /api/v1/auth/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(users)
	return nil
}

// UpdateUserRole godoc
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        request body model.UpdateUserRoleRequest true "New role"
// @Success      200 {object} map[string]string
// @Failure      404 {object} common.AppError
// @Router       /api/v1/auth/users/{id}/role [patch]
func (h *UserHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid user ID", nil)
	}

	var req model.UpdateUserRoleRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	if err := h.userService.UpdateUserRole(userID, req.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.NewAppError(http.StatusNotFound, common.CodeUserNotFound, "User not found", nil)
		}
		return common.ErrInternal(err)
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":  userID,
		"new_role": req.Role,
	}).Info("User role updated")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Role updated successfully"})
	return nil
}
