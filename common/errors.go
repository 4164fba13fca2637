package common

import (
	"book-review-api/logger"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Stable machine-readable error codes. Clients branch on these, so the
// string for a given failure kind never changes.
const (
	CodeInvalidToken            = "invalid_token"
	CodeTokenRevoked            = "token_revoked"
	CodeAccessTokenRequired     = "access_token_required"
	CodeRefreshTokenRequired    = "refresh_token_required"
	CodeInsufficientPermissions = "insufficient_permissions"
	CodeInvalidEmailOrPassword  = "invalid_email_or_password"
	CodeUserAlreadyExists       = "user_already_exists"
	CodeUserNotFound            = "user_not_found"
	CodeBookNotFound            = "book_not_found"
	CodeReviewNotFound          = "review_not_found"
	CodeTagNotFound             = "tag_not_found"
	CodeTagAlreadyExists        = "tag_already_exists"
	CodeInvalidRequest          = "invalid_request"
	CodeInternalServerError     = "internal_server_error"
)

type AppError struct {
	Code      int    `json:"-"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, errorCode, message string, err error) *AppError {
	return &AppError{
		Code:      code,
		ErrorCode: errorCode,
		Message:   message,
		Err:       err,
	}
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"error_code":     e.ErrorCode,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}

// Shorthand constructors for the error kinds raised in more than one place.

func ErrInvalidToken(err error) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token", err)
}

func ErrTokenRevoked() *AppError {
	return NewAppError(http.StatusUnauthorized, CodeTokenRevoked, "This token has been revoked, please log in again", nil)
}

func ErrInsufficientPermissions() *AppError {
	return NewAppError(http.StatusForbidden, CodeInsufficientPermissions, "You do not have permission to perform this action", nil)
}

func ErrInternal(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalServerError, "Oops... something went wrong", err)
}
