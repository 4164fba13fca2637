package handler

import (
	"book-review-api/common"
	"book-review-api/logger"
	"net/http"
)

// ErrorHandlingMiddleware adapts handlers that return *common.AppError
// into http.HandlerFunc and sends the error body. A panic anywhere in
// the chain is caught here and mapped to a generic 500 so internals
// never leak to the client.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.WithField("panic", rec).Error("Recovered from panic in handler")
				common.NewAppError(http.StatusInternalServerError, common.CodeInternalServerError,
					"Oops... something went wrong", nil).Send(w)
			}
		}()

		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}
