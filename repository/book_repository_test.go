// file: repository/book_repository_test.go

package repository

import (
	"book-review-api/logger"
	"book-review-api/model"
	"database/sql"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBookRepository_CreateBook(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)
	now := time.Now()

	book := &model.Book{
		Title:         "Think Python",
		Author:        "Allen B. Downey",
		Publisher:     "O'Reilly Media",
		PublishedDate: "2021-01-01",
		PageCount:     300,
		Language:      "English",
		UserID:        1,
	}

	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO books`)).
		WithArgs(book.Title, book.Author, book.Publisher, book.PublishedDate,
			book.PageCount, book.Language, book.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	err = repo.CreateBook(book)

	assert.NoError(t, err)
	assert.Equal(t, 1, book.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestBookRepository_GetBookByID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "author", "publisher", "published_date",
			"page_count", "language", "user_id", "created_at", "updated_at"}).
			AddRow(1, "Think Python", "Allen B. Downey", "O'Reilly Media", "2021-01-01",
				300, "English", 1, now, now)

		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, author, publisher, published_date, page_count, language, user_id, created_at, updated_at`)).
			WithArgs(1).
			WillReturnRows(rows)

		book, err := repo.GetBookByID(1)

		assert.NoError(t, err)
		assert.Equal(t, "Think Python", book.Title)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, author, publisher`)).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetBookByID(99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestBookRepository_DeleteBook(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)

	t.Run("deleted", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id=$1`)).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteBook(1))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing row maps to sql.ErrNoRows", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM books WHERE id=$1`)).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteBook(99), sql.ErrNoRows)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestBookRepository_GetBooksByUserID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "title", "author", "publisher", "published_date",
		"page_count", "language", "user_id", "created_at", "updated_at"}).
		AddRow(2, "Django By Example", "Antonio Mele", "Packt Publishing Ltd", "2022-01-19",
			1023, "English", 7, now, now).
		AddRow(1, "Think Python", "Allen B. Downey", "O'Reilly Media", "2021-01-01",
			300, "English", 7, now, now)

	dbMock.ExpectQuery(regexp.QuoteMeta(`FROM books WHERE user_id=$1`)).
		WithArgs(7).
		WillReturnRows(rows)

	books, err := repo.GetBooksByUserID(7)

	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, "Django By Example", books[0].Title)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
