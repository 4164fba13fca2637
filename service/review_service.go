// file: service/review_service.go

package service

import (
	"book-review-api/model"
	"book-review-api/repository"
	"database/sql"
	"errors"
)

// ErrReviewNotFound is returned when the requested review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewService handles the business logic around book reviews.
type ReviewService struct {
	reviewRepo repository.IReviewRepository
	bookRepo   repository.IBookRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repository.IReviewRepository, bookRepo repository.IBookRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, bookRepo: bookRepo}
}

// AddReviewToBook attaches a new review to an existing book.
func (s *ReviewService) AddReviewToBook(bookID int, req *model.CreateReviewRequest, userID int) (*model.Review, error) {
	if _, err := s.bookRepo.GetBookByID(bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	review := &model.Review{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		UserID:     userID,
		BookID:     bookID,
	}
	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetReviewsForBook lists all reviews attached to a book.
func (s *ReviewService) GetReviewsForBook(bookID int) ([]*model.Review, error) {
	if _, err := s.bookRepo.GetBookByID(bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return s.reviewRepo.GetReviewsByBookID(bookID)
}

// DeleteReview removes a review when the caller wrote it or is an admin.
func (s *ReviewService) DeleteReview(reviewID, userID int, role model.Role) error {
	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.UserID != userID && role != model.RoleAdmin {
		return ErrNotOwner
	}

	return s.reviewRepo.DeleteReview(reviewID)
}
