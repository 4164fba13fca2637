// file: service/book_service.go

package service

import (
	"book-review-api/model"
	"book-review-api/repository"
	"database/sql"
	"errors"
)

var (
	// ErrBookNotFound is returned when the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrNotOwner is returned when a non-admin user tries to modify a
	// resource submitted by someone else.
	ErrNotOwner = errors.New("resource does not belong to this user")
)

// BookService handles the business logic around book submissions.
type BookService struct {
	bookRepo repository.IBookRepository
	tagRepo  repository.ITagRepository
}

// NewBookService creates a new BookService.
func NewBookService(bookRepo repository.IBookRepository, tagRepo repository.ITagRepository) *BookService {
	return &BookService{bookRepo: bookRepo, tagRepo: tagRepo}
}

// GetAllBooks lists every book, newest submissions first.
func (s *BookService) GetAllBooks() ([]*model.Book, error) {
	return s.bookRepo.GetAllBooks()
}

// GetBooksByUser lists the books submitted by one user.
func (s *BookService) GetBooksByUser(userID int) ([]*model.Book, error) {
	return s.bookRepo.GetBooksByUserID(userID)
}

// GetBook returns a single book with its tags attached.
func (s *BookService) GetBook(id int) (*model.Book, error) {
	book, err := s.bookRepo.GetBookByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	tags, err := s.tagRepo.GetTagsByBookID(id)
	if err != nil {
		return nil, err
	}
	book.Tags = tags

	return book, nil
}

// CreateBook records a new submission owned by userID.
func (s *BookService) CreateBook(req *model.CreateBookRequest, userID int) (*model.Book, error) {
	book := &model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		PublishedDate: req.PublishedDate,
		PageCount:     req.PageCount,
		Language:      req.Language,
		UserID:        userID,
	}
	if err := s.bookRepo.CreateBook(book); err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook applies the update when the caller owns the book or is an
// admin.
func (s *BookService) UpdateBook(bookID int, req *model.UpdateBookRequest, userID int, role model.Role) (*model.Book, error) {
	book, err := s.bookRepo.GetBookByID(bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if book.UserID != userID && role != model.RoleAdmin {
		return nil, ErrNotOwner
	}

	book.Title = req.Title
	book.Author = req.Author
	book.Publisher = req.Publisher
	book.PageCount = req.PageCount
	book.Language = req.Language

	if err := s.bookRepo.UpdateBook(book); err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes the book when the caller owns it or is an admin.
func (s *BookService) DeleteBook(bookID, userID int, role model.Role) error {
	book, err := s.bookRepo.GetBookByID(bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookNotFound
		}
		return err
	}

	if book.UserID != userID && role != model.RoleAdmin {
		return ErrNotOwner
	}

	return s.bookRepo.DeleteBook(bookID)
}
