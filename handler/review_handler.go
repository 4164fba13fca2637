package handler

import (
	"book-review-api/common"
	"book-review-api/model"
	"book-review-api/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// AddReview godoc
// @Summary      Attach a review to a book
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Param        request body model.CreateReviewRequest true "Review"
// @Success      201 {object} model.Review
// @Failure      404 {object} common.AppError
// @Router       /api/v1/reviews/book/{id} [post]
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	bookID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid book ID", nil)
	}

	var req model.CreateReviewRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.ErrInvalidToken(nil)
	}

	review, err := h.reviewService.AddReviewToBook(bookID, &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			return common.NewAppError(http.StatusNotFound, common.CodeBookNotFound, "Book not found", nil)
		}
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
	return nil
}

// ListReviews godoc
// @Summary      List the reviews attached to a book
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Book ID"
// @Success      200 {array} model.Review
// @Failure      404 {object} common.AppError
// @Router       /api/v1/reviews/book/{id} [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) *common.AppError {
	bookID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid book ID", nil)
	}

	reviews, err := h.reviewService.GetReviewsForBook(bookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			return common.NewAppError(http.StatusNotFound, common.CodeBookNotFound, "Book not found", nil)
		}
		return common.ErrInternal(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(reviews)
	return nil
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      204
// @Failure      403 {object} common.AppError
// @Failure      404 {object} common.AppError
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	reviewID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, common.CodeInvalidRequest, "Invalid review ID", nil)
	}

	userID, role, appErr := principalFromContext(r)
	if appErr != nil {
		return appErr
	}

	if err := h.reviewService.DeleteReview(reviewID, userID, role); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			return common.NewAppError(http.StatusNotFound, common.CodeReviewNotFound, "Review not found", nil)
		case errors.Is(err, service.ErrNotOwner):
			return common.ErrInsufficientPermissions()
		default:
			return common.ErrInternal(err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
