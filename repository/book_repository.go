// file: repository/book_repository.go

package repository

import (
	"book-review-api/logger"
	"book-review-api/model"
	"database/sql"
)

// IBookRepository defines the contract for book database operations.
type IBookRepository interface {
	CreateBook(book *model.Book) error
	GetBookByID(id int) (*model.Book, error)
	GetAllBooks() ([]*model.Book, error)
	GetBooksByUserID(userID int) ([]*model.Book, error)
	UpdateBook(book *model.Book) error
	DeleteBook(id int) error
}

// BookRepository implements IBookRepository.
type BookRepository struct {
	DB *sql.DB
}

// NewBookRepository creates a new BookRepository.
func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{DB: db}
}

// CreateBook inserts a new book record into the database.
func (r *BookRepository) CreateBook(book *model.Book) error {
	log := logger.Log.WithField("title", book.Title)
	log.Info("Executing query to create a new book")

	query := `INSERT INTO books (title, author, publisher, published_date, page_count, language, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, book.Title, book.Author, book.Publisher, book.PublishedDate,
		book.PageCount, book.Language, book.UserID).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create book query")
		return err
	}
	return nil
}

// GetBookByID retrieves a single book. Returns sql.ErrNoRows when the
// book does not exist.
func (r *BookRepository) GetBookByID(id int) (*model.Book, error) {
	book := &model.Book{}
	query := `SELECT id, title, author, publisher, published_date, page_count, language, user_id, created_at, updated_at
		FROM books WHERE id=$1`
	err := r.DB.QueryRow(query, id).Scan(&book.ID, &book.Title, &book.Author, &book.Publisher,
		&book.PublishedDate, &book.PageCount, &book.Language, &book.UserID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("book_id", id).Error("Failed to execute get book query")
		}
		return nil, err
	}
	return book, nil
}

// GetAllBooks retrieves all books, newest submissions first.
func (r *BookRepository) GetAllBooks() ([]*model.Book, error) {
	query := `SELECT id, title, author, publisher, published_date, page_count, language, user_id, created_at, updated_at
		FROM books ORDER BY created_at DESC`
	return r.queryBooks(query)
}

// GetBooksByUserID retrieves all books submitted by a specific user.
func (r *BookRepository) GetBooksByUserID(userID int) ([]*model.Book, error) {
	query := `SELECT id, title, author, publisher, published_date, page_count, language, user_id, created_at, updated_at
		FROM books WHERE user_id=$1 ORDER BY created_at DESC`
	return r.queryBooks(query, userID)
}

func (r *BookRepository) queryBooks(query string, args ...interface{}) ([]*model.Book, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list books query")
		return nil, err
	}
	defer rows.Close()

	var books []*model.Book
	for rows.Next() {
		book := &model.Book{}
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Publisher, &book.PublishedDate,
			&book.PageCount, &book.Language, &book.UserID, &book.CreatedAt, &book.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// UpdateBook persists changed book fields.
func (r *BookRepository) UpdateBook(book *model.Book) error {
	query := `UPDATE books SET title=$1, author=$2, publisher=$3, page_count=$4, language=$5, updated_at=NOW()
		WHERE id=$6 RETURNING updated_at`
	return r.DB.QueryRow(query, book.Title, book.Author, book.Publisher, book.PageCount,
		book.Language, book.ID).Scan(&book.UpdatedAt)
}

// DeleteBook removes a book. Reviews and tag links are removed by the
// ON DELETE CASCADE constraints.
func (r *BookRepository) DeleteBook(id int) error {
	result, err := r.DB.Exec(`DELETE FROM books WHERE id=$1`, id)
	if err != nil {
		logger.Log.WithError(err).WithField("book_id", id).Error("Failed to execute delete book query")
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
