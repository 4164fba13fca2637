// file: service/review_service_test.go

package service

import (
	"book-review-api/model"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) CreateReview(review *model.Review) error {
	args := m.Called(review)
	return args.Error(0)
}
func (m *mockReviewRepo) GetReviewByID(id int) (*model.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}
func (m *mockReviewRepo) GetReviewsByBookID(bookID int) ([]*model.Review, error) {
	args := m.Called(bookID)
	return args.Get(0).([]*model.Review), args.Error(1)
}
func (m *mockReviewRepo) DeleteReview(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestReviewService_AddReviewToBook(t *testing.T) {
	req := &model.CreateReviewRequest{Rating: 4, ReviewText: "Great read"}

	t.Run("success", func(t *testing.T) {
		mockReviews := new(mockReviewRepo)
		mockBooks := new(mockBookRepo)

		mockBooks.On("GetBookByID", 1).Return(&model.Book{ID: 1}, nil).Once()
		mockReviews.On("CreateReview", mock.MatchedBy(func(rv *model.Review) bool {
			return rv.BookID == 1 && rv.UserID == 3 && rv.Rating == 4
		})).Return(nil).Once()

		reviewService := NewReviewService(mockReviews, mockBooks)
		review, err := reviewService.AddReviewToBook(1, req, 3)

		assert.NoError(t, err)
		assert.Equal(t, 1, review.BookID)
		mockReviews.AssertExpectations(t)
		mockBooks.AssertExpectations(t)
	})

	t.Run("book not found", func(t *testing.T) {
		mockReviews := new(mockReviewRepo)
		mockBooks := new(mockBookRepo)
		mockBooks.On("GetBookByID", 99).Return(nil, sql.ErrNoRows).Once()

		reviewService := NewReviewService(mockReviews, mockBooks)
		_, err := reviewService.AddReviewToBook(99, req, 3)

		assert.ErrorIs(t, err, ErrBookNotFound)
		mockReviews.AssertNotCalled(t, "CreateReview")
	})
}

func TestReviewService_DeleteReview(t *testing.T) {
	t.Run("author deletes own review", func(t *testing.T) {
		mockReviews := new(mockReviewRepo)
		mockReviews.On("GetReviewByID", 2).Return(&model.Review{ID: 2, UserID: 3}, nil).Once()
		mockReviews.On("DeleteReview", 2).Return(nil).Once()

		reviewService := NewReviewService(mockReviews, new(mockBookRepo))
		err := reviewService.DeleteReview(2, 3, model.RoleUser)

		assert.NoError(t, err)
		mockReviews.AssertExpectations(t)
	})

	t.Run("admin deletes any review", func(t *testing.T) {
		mockReviews := new(mockReviewRepo)
		mockReviews.On("GetReviewByID", 2).Return(&model.Review{ID: 2, UserID: 3}, nil).Once()
		mockReviews.On("DeleteReview", 2).Return(nil).Once()

		reviewService := NewReviewService(mockReviews, new(mockBookRepo))
		err := reviewService.DeleteReview(2, 42, model.RoleAdmin)

		assert.NoError(t, err)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		mockReviews := new(mockReviewRepo)
		mockReviews.On("GetReviewByID", 2).Return(&model.Review{ID: 2, UserID: 3}, nil).Once()

		reviewService := NewReviewService(mockReviews, new(mockBookRepo))
		err := reviewService.DeleteReview(2, 42, model.RoleUser)

		assert.ErrorIs(t, err, ErrNotOwner)
		mockReviews.AssertNotCalled(t, "DeleteReview")
	})

	t.Run("not found", func(t *testing.T) {
		mockReviews := new(mockReviewRepo)
		mockReviews.On("GetReviewByID", 9).Return(nil, sql.ErrNoRows).Once()

		reviewService := NewReviewService(mockReviews, new(mockBookRepo))
		err := reviewService.DeleteReview(9, 3, model.RoleUser)

		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}
