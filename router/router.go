package router

import (
	"book-review-api/handler"
	"book-review-api/model"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter registers every route with its guard chain. Role gates
// always compose after a token guard, so they only ever see an
// authenticated principal.
func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	tagHandler *handler.TagHandler,
	authMW *handler.AuthMiddleware,
) http.Handler {
	mux := http.NewServeMux()

	anyRole := authMW.RequireRoles(model.RoleAdmin, model.RoleUser)
	adminOnly := authMW.RequireRoles(model.RoleAdmin)

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Auth
	mux.Handle("POST /api/v1/auth/signup", handler.ErrorHandlingMiddleware(authHandler.Signup))
	mux.Handle("POST /api/v1/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("POST /api/v1/auth/logout",
		authMW.RequireAccessToken(handler.ErrorHandlingMiddleware(authHandler.Logout)))
	mux.Handle("POST /api/v1/auth/refresh",
		authMW.RequireRefreshToken(handler.ErrorHandlingMiddleware(authHandler.Refresh)))
	mux.Handle("GET /api/v1/auth/me",
		authMW.RequireAccessToken(handler.ErrorHandlingMiddleware(authHandler.Me)))

	// User management (admin only)
	mux.Handle("GET /api/v1/auth/users",
		authMW.RequireAccessToken(adminOnly(handler.ErrorHandlingMiddleware(userHandler.ListUsers))))
	mux.Handle("PATCH /api/v1/auth/users/{id}/role",
		authMW.RequireAccessToken(adminOnly(handler.ErrorHandlingMiddleware(userHandler.UpdateUserRole))))

	// Books
	mux.Handle("GET /api/v1/books",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(bookHandler.ListBooks))))
	mux.Handle("GET /api/v1/books/user/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(bookHandler.ListBooksByUser))))
	mux.Handle("GET /api/v1/books/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(bookHandler.GetBook))))
	mux.Handle("POST /api/v1/books",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(bookHandler.CreateBook))))
	mux.Handle("PATCH /api/v1/books/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(bookHandler.UpdateBook))))
	mux.Handle("DELETE /api/v1/books/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(bookHandler.DeleteBook))))

	// Reviews
	mux.Handle("POST /api/v1/reviews/book/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(reviewHandler.AddReview))))
	mux.Handle("GET /api/v1/reviews/book/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(reviewHandler.ListReviews))))
	mux.Handle("DELETE /api/v1/reviews/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(reviewHandler.DeleteReview))))

	// Tags
	mux.Handle("GET /api/v1/tags",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(tagHandler.ListTags))))
	mux.Handle("POST /api/v1/tags",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(tagHandler.CreateTag))))
	mux.Handle("POST /api/v1/tags/book/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(tagHandler.AddTagsToBook))))
	mux.Handle("PUT /api/v1/tags/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(tagHandler.UpdateTag))))
	mux.Handle("DELETE /api/v1/tags/{id}",
		authMW.RequireAccessToken(anyRole(handler.ErrorHandlingMiddleware(tagHandler.DeleteTag))))

	return mux
}
