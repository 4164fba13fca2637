package handler

import (
	"book-review-api/common"
	"book-review-api/logger"
	"book-review-api/model"
	"book-review-api/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

type BookHandler struct {
	bookService *service.BookService
}

func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// ListBooks godoc
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Book
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) *common.AppError {
	books, err := h.bookService.GetAllBooks()
	if err != nil {
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(books)
	return nil
}

// ListBooksByUser godoc
// @Summary      List books submitted by a user
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {array} model.Book
// @Router       /api/v1/books/user/{id} [get]
func (h *BookHandler) ListBooksByUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid user ID", nil)
	}

	books, err := h.bookService.GetBooksByUser(userID)
	if err != nil {
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(books)
	return nil
}

// GetBook godoc
// @Summary      Get a single book with its tags
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Success      200 {object} model.Book
// @Failure      404 {object} common.AppError
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) *common.AppError {
	bookID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid book ID", nil)
	}

	book, err := h.bookService.GetBook(bookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			return common.NewAppError(http.StatusNotFound, common.CodeBookNotFound, "Book not found", nil)
		}
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(book)
	return nil
}

// CreateBook godoc
// @Summary      Submit a new book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateBookRequest true "Book details"
// @Success      201 {object} model.Book
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateBookRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.ErrInvalidToken(nil)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"title":   req.Title,
	})
	log.Info("Create book request received")

	book, err := h.bookService.CreateBook(&req, userID)
	if err != nil {
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(book)
	return nil
}

// UpdateBook godoc
// @Summary      Update a book submission
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Param        request body model.UpdateBookRequest true "Updated fields"
// @Success      200 {object} model.Book
// @Failure      403 {object} common.AppError
// @Failure      404 {object} common.AppError
// @Router       /api/v1/books/{id} [patch]
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) *common.AppError {
	bookID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid book ID", nil)
	}

	var req model.UpdateBookRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	userID, role, appErr := principalFromContext(r)
	if appErr != nil {
		return appErr
	}

	book, err := h.bookService.UpdateBook(bookID, &req, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			return common.NewAppError(http.StatusNotFound, common.CodeBookNotFound, "Book not found", nil)
		case errors.Is(err, service.ErrNotOwner):
			return common.ErrInsufficientPermissions()
		default:
			return common.ErrInternal(err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(book)
	return nil
}

// DeleteBook godoc
// @Summary      Delete a book submission
// @Tags         books
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Success      204
// @Failure      403 {object} common.AppError
// @Failure      404 {object} common.AppError
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) *common.AppError {
	bookID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid book ID", nil)
	}

	userID, role, appErr := principalFromContext(r)
	if appErr != nil {
		return appErr
	}

	if err := h.bookService.DeleteBook(bookID, userID, role); err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			return common.NewAppError(http.StatusNotFound, common.CodeBookNotFound, "Book not found", nil)
		case errors.Is(err, service.ErrNotOwner):
			return common.ErrInsufficientPermissions()
		default:
			return common.ErrInternal(err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// principalFromContext reads the identity a token guard stored on the
// request.
func principalFromContext(r *http.Request) (int, model.Role, *common.AppError) {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return 0, "", common.ErrInvalidToken(nil)
	}
	role, ok := r.Context().Value(UserRoleKey).(model.Role)
	if !ok {
		return 0, "", common.ErrInvalidToken(nil)
	}
	return userID, role, nil
}
