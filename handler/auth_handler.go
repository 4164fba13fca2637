package handler

import (
	"book-review-api/common"
	"book-review-api/logger"
	"book-review-api/model"
	"book-review-api/service"
	"encoding/json"
	"errors"
	"net/http"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
	mailer      service.IMailer
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, mailer service.IMailer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		mailer:      mailer,
	}
}

// Signup godoc
// @Summary      Create a new user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.SignupRequest true "New account details"
// @Success      201 {object} model.User
// @Failure      409 {object} common.AppError
// @Router       /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.SignupRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			return common.NewAppError(http.StatusConflict, common.CodeUserAlreadyExists, "User with this email already exists", nil)
		}
		return common.ErrInternal(err)
	}

	// Mail delivery must never block or fail the signup request.
	go func() {
		if err := h.mailer.SendWelcomeEmail(user.Email, user.Username); err != nil {
			logger.Log.WithError(err).WithField("user_id", user.ID).Warn("Failed to send welcome email")
		}
	}()

	logger.Log.WithField("user_id", user.ID).Info("New user account created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	return nil
}

// Login godoc
// @Summary      Authenticate and receive an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body model.LoginRequest true "Credentials"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} common.AppError
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	user, accessToken, refreshToken, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Unknown email and wrong password produce the exact same
			// response so account existence is not leaked.
			return common.NewAppError(http.StatusUnauthorized, common.CodeInvalidEmailOrPassword, "Invalid email or password", nil)
		}
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":       "Login successful",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          user,
	})
	return nil
}

// Logout godoc
// @Summary      Revoke the presented access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	claims, ok := r.Context().Value(ClaimsKey).(*model.AppClaims)
	if !ok {
		return common.ErrInvalidToken(nil)
	}

	if err := h.authService.Logout(r.Context(), claims); err != nil {
		return common.ErrInternal(err)
	}

	logger.Log.WithField("user_id", claims.UserID).Info("User logged out, token revoked")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
	return nil
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	claims, ok := r.Context().Value(ClaimsKey).(*model.AppClaims)
	if !ok {
		return common.ErrInvalidToken(nil)
	}

	accessToken, err := h.authService.RefreshAccessToken(claims)
	if err != nil {
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"access_token": accessToken})
	return nil
}

// Me godoc
// @Summary      Return the authenticated user's account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} model.User
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.ErrInvalidToken(nil)
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		return common.NewAppError(http.StatusNotFound, common.CodeUserNotFound, "User not found", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
	return nil
}
