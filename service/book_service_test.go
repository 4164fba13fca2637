// file: service/book_service_test.go

package service

import (
	"book-review-api/model"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockBookRepo struct{ mock.Mock }

func (m *mockBookRepo) CreateBook(book *model.Book) error {
	args := m.Called(book)
	return args.Error(0)
}
func (m *mockBookRepo) GetBookByID(id int) (*model.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}
func (m *mockBookRepo) GetAllBooks() ([]*model.Book, error) {
	args := m.Called()
	return args.Get(0).([]*model.Book), args.Error(1)
}
func (m *mockBookRepo) GetBooksByUserID(userID int) ([]*model.Book, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Book), args.Error(1)
}
func (m *mockBookRepo) UpdateBook(book *model.Book) error {
	args := m.Called(book)
	return args.Error(0)
}
func (m *mockBookRepo) DeleteBook(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type mockTagRepo struct{ mock.Mock }

func (m *mockTagRepo) CreateTag(tag *model.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}
func (m *mockTagRepo) GetTagByID(id int) (*model.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}
func (m *mockTagRepo) GetTagByName(name string) (*model.Tag, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}
func (m *mockTagRepo) GetAllTags() ([]*model.Tag, error) {
	args := m.Called()
	return args.Get(0).([]*model.Tag), args.Error(1)
}
func (m *mockTagRepo) GetTagsByBookID(bookID int) ([]*model.Tag, error) {
	args := m.Called(bookID)
	return args.Get(0).([]*model.Tag), args.Error(1)
}
func (m *mockTagRepo) AttachTagToBook(bookID, tagID int) error {
	args := m.Called(bookID, tagID)
	return args.Error(0)
}
func (m *mockTagRepo) UpdateTag(tag *model.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}
func (m *mockTagRepo) DeleteTag(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestBookService_GetBook(t *testing.T) {
	t.Run("attaches tags", func(t *testing.T) {
		mockBooks := new(mockBookRepo)
		mockTags := new(mockTagRepo)

		book := &model.Book{ID: 1, Title: "Think Python", UserID: 2}
		tags := []*model.Tag{{ID: 1, Name: "programming"}}

		mockBooks.On("GetBookByID", 1).Return(book, nil).Once()
		mockTags.On("GetTagsByBookID", 1).Return(tags, nil).Once()

		bookService := NewBookService(mockBooks, mockTags)
		got, err := bookService.GetBook(1)

		assert.NoError(t, err)
		assert.Equal(t, tags, got.Tags)
		mockBooks.AssertExpectations(t)
		mockTags.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockBooks := new(mockBookRepo)
		mockTags := new(mockTagRepo)
		mockBooks.On("GetBookByID", 99).Return(nil, sql.ErrNoRows).Once()

		bookService := NewBookService(mockBooks, mockTags)
		_, err := bookService.GetBook(99)

		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestBookService_UpdateBook_Ownership(t *testing.T) {
	req := &model.UpdateBookRequest{
		Title:     "New Title",
		Author:    "Someone",
		Publisher: "Somewhere",
		PageCount: 100,
		Language:  "English",
	}

	t.Run("owner can update", func(t *testing.T) {
		mockBooks := new(mockBookRepo)
		mockBooks.On("GetBookByID", 1).Return(&model.Book{ID: 1, UserID: 5}, nil).Once()
		mockBooks.On("UpdateBook", mock.MatchedBy(func(b *model.Book) bool {
			return b.Title == "New Title"
		})).Return(nil).Once()

		bookService := NewBookService(mockBooks, new(mockTagRepo))
		_, err := bookService.UpdateBook(1, req, 5, model.RoleUser)

		assert.NoError(t, err)
		mockBooks.AssertExpectations(t)
	})

	t.Run("admin can update someone else's book", func(t *testing.T) {
		mockBooks := new(mockBookRepo)
		mockBooks.On("GetBookByID", 1).Return(&model.Book{ID: 1, UserID: 5}, nil).Once()
		mockBooks.On("UpdateBook", mock.Anything).Return(nil).Once()

		bookService := NewBookService(mockBooks, new(mockTagRepo))
		_, err := bookService.UpdateBook(1, req, 42, model.RoleAdmin)

		assert.NoError(t, err)
	})

	t.Run("non-owner user is rejected", func(t *testing.T) {
		mockBooks := new(mockBookRepo)
		mockBooks.On("GetBookByID", 1).Return(&model.Book{ID: 1, UserID: 5}, nil).Once()

		bookService := NewBookService(mockBooks, new(mockTagRepo))
		_, err := bookService.UpdateBook(1, req, 42, model.RoleUser)

		assert.ErrorIs(t, err, ErrNotOwner)
		mockBooks.AssertNotCalled(t, "UpdateBook")
	})
}

func TestBookService_DeleteBook(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockBooks := new(mockBookRepo)
		mockBooks.On("GetBookByID", 7).Return(nil, sql.ErrNoRows).Once()

		bookService := NewBookService(mockBooks, new(mockTagRepo))
		err := bookService.DeleteBook(7, 1, model.RoleUser)

		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		mockBooks := new(mockBookRepo)
		mockBooks.On("GetBookByID", 7).Return(&model.Book{ID: 7, UserID: 1}, nil).Once()
		mockBooks.On("DeleteBook", 7).Return(nil).Once()

		bookService := NewBookService(mockBooks, new(mockTagRepo))
		err := bookService.DeleteBook(7, 1, model.RoleUser)

		assert.NoError(t, err)
		mockBooks.AssertExpectations(t)
	})
}

func TestBookService_CreateBook(t *testing.T) {
	mockBooks := new(mockBookRepo)
	mockBooks.On("CreateBook", mock.MatchedBy(func(b *model.Book) bool {
		return b.UserID == 9 && b.Title == "Think Python"
	})).Return(nil).Once()

	bookService := NewBookService(mockBooks, new(mockTagRepo))
	book, err := bookService.CreateBook(&model.CreateBookRequest{
		Title:         "Think Python",
		Author:        "Allen B. Downey",
		Publisher:     "O'Reilly Media",
		PublishedDate: "2021-01-01",
		PageCount:     300,
		Language:      "English",
	}, 9)

	assert.NoError(t, err)
	assert.Equal(t, 9, book.UserID)
	mockBooks.AssertExpectations(t)
}
