// file: repository/user_repository_test.go

package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "email", "first_name", "last_name",
			"role", "is_verified", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "jane", "jane@example.com", "Jane", "Doe", "user", false, "hash", now, now)

		dbMock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email=$1`)).
			WithArgs("jane@example.com").
			WillReturnRows(rows)

		user, err := repo.GetUserByEmail("jane@example.com")

		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "jane", user.Username)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("unknown email", func(t *testing.T) {
		dbMock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email=$1`)).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByEmail("nobody@example.com")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestUserRepository_UpdateUserRole(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)

	t.Run("updated", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role=$1`)).
			WithArgs("admin", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateUserRole(1, "admin"))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("missing user maps to sql.ErrNoRows", func(t *testing.T) {
		dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role=$1`)).
			WithArgs("admin", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateUserRole(99, "admin"), sql.ErrNoRows)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
