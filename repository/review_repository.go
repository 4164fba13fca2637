// file: repository/review_repository.go

package repository

import (
	"book-review-api/logger"
	"book-review-api/model"
	"database/sql"

	"github.com/sirupsen/logrus"
)

// IReviewRepository defines the contract for review database operations.
type IReviewRepository interface {
	CreateReview(review *model.Review) error
	GetReviewByID(id int) (*model.Review, error)
	GetReviewsByBookID(bookID int) ([]*model.Review, error)
	DeleteReview(id int) error
}

// ReviewRepository implements IReviewRepository.
type ReviewRepository struct {
	DB *sql.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// CreateReview inserts a new review record into the database.
func (r *ReviewRepository) CreateReview(review *model.Review) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": review.UserID,
		"book_id": review.BookID,
	})
	log.Info("Executing query to create a new review")

	query := `INSERT INTO reviews (rating, review_text, user_id, book_id)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, review.Rating, review.ReviewText, review.UserID, review.BookID).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create review query")
		return err
	}
	return nil
}

// GetReviewByID retrieves a single review by its ID.
func (r *ReviewRepository) GetReviewByID(id int) (*model.Review, error) {
	review := &model.Review{}
	query := `SELECT id, rating, review_text, user_id, book_id, created_at, updated_at
		FROM reviews WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&review.ID, &review.Rating, &review.ReviewText,
		&review.UserID, &review.BookID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return review, nil
}

// GetReviewsByBookID retrieves all reviews for a book, newest first.
func (r *ReviewRepository) GetReviewsByBookID(bookID int) ([]*model.Review, error) {
	query := `SELECT id, rating, review_text, user_id, book_id, created_at, updated_at
		FROM reviews WHERE book_id=$1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		review := &model.Review{}
		if err := rows.Scan(&review.ID, &review.Rating, &review.ReviewText,
			&review.UserID, &review.BookID, &review.CreatedAt, &review.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// DeleteReview removes a review by its ID.
func (r *ReviewRepository) DeleteReview(id int) error {
	result, err := r.DB.Exec(`DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		logger.Log.WithError(err).WithField("review_id", id).Error("Failed to execute delete review query")
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
