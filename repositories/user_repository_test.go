package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/docflow/docflow-backend/models"
)

// mockTx lets the pgxmock pool stand in for a Transaction in tests.
type mockTx struct {
	pgxmock.PgxPoolIface
}

func (tx mockTx) RawTx() pgx.Tx {
	return nil
}

func TestUserRepository_UserByEmail(t *testing.T) {
	repo := UserRepositoryPostgresql{}
	createdAt := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery("SELECT pk, sk, id, name, email, password_hash, role, created_at FROM users").
			WithArgs("USER", "EMAIL#ada@example.com").
			WillReturnRows(pgxmock.
				NewRows([]string{"pk", "sk", "id", "name", "email", "password_hash", "role", "created_at"}).
				AddRow("USER", "EMAIL#ada@example.com", "user-1", "Ada", "ada@example.com",
					"$2a$10$hash", "AUTHOR", createdAt))

		user, err := repo.UserByEmail(context.Background(), mock, "ada@example.com")
		assert.NoError(t, err)
		assert.Equal(t, models.User{
			Id:           "user-1",
			Name:         "Ada",
			Email:        "ada@example.com",
			PasswordHash: "$2a$10$hash",
			Role:         models.RoleAuthor,
			CreatedAt:    createdAt,
		}, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery("SELECT pk, sk, id, name, email, password_hash, role, created_at FROM users").
			WithArgs("USER", "EMAIL#nobody@example.com").
			WillReturnRows(pgxmock.
				NewRows([]string{"pk", "sk", "id", "name", "email", "password_hash", "role", "created_at"}))

		_, err = repo.UserByEmail(context.Background(), mock, "nobody@example.com")
		assert.ErrorIs(t, err, models.ErrUnknownUser)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery("SELECT pk, sk, id, name, email, password_hash, role, created_at FROM users").
			WithArgs("USER", "EMAIL#ada@example.com").
			WillReturnError(assert.AnError)

		_, err = repo.UserByEmail(context.Background(), mock, "ada@example.com")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_UserById(t *testing.T) {
	repo := UserRepositoryPostgresql{}
	createdAt := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery("SELECT pk, sk, id, name, email, password_hash, role, created_at FROM users").
			WithArgs("USER", "ID#user-1").
			WillReturnRows(pgxmock.
				NewRows([]string{"pk", "sk", "id", "name", "email", "password_hash", "role", "created_at"}).
				AddRow("USER", "ID#user-1", "user-1", "Ada", "ada@example.com",
					"$2a$10$hash", "AUTHOR", createdAt))

		user, err := repo.UserById(context.Background(), mock, "user-1")
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.Equal(t, "ada@example.com", user.Email)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent user yields nil without error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery("SELECT pk, sk, id, name, email, password_hash, role, created_at FROM users").
			WithArgs("USER", "ID#user-404").
			WillReturnRows(pgxmock.
				NewRows([]string{"pk", "sk", "id", "name", "email", "password_hash", "role", "created_at"}))

		user, err := repo.UserById(context.Background(), mock, "user-404")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo := UserRepositoryPostgresql{}
	user := models.User{
		Id:           "user-1",
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleAuthor,
		CreatedAt:    time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC),
	}

	t.Run("nominal writes both key rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(
				"USER", "EMAIL#ada@example.com", user.Id, user.Name, user.Email,
				user.PasswordHash, "AUTHOR", user.CreatedAt,
				"USER", "ID#user-1", user.Id, user.Name, user.Email,
				user.PasswordHash, "AUTHOR", user.CreatedAt,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))

		err = repo.CreateUser(context.Background(), mockTx{mock}, user)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("key collision maps to ErrUserAlreadyExists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(
				"USER", "EMAIL#ada@example.com", user.Id, user.Name, user.Email,
				user.PasswordHash, "AUTHOR", user.CreatedAt,
				"USER", "ID#user-1", user.Id, user.Name, user.Email,
				user.PasswordHash, "AUTHOR", user.CreatedAt,
			).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err = repo.CreateUser(context.Background(), mockTx{mock}, user)
		assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other exec errors pass through", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectExec("INSERT INTO users").
			WithArgs(
				"USER", "EMAIL#ada@example.com", user.Id, user.Name, user.Email,
				user.PasswordHash, "AUTHOR", user.CreatedAt,
				"USER", "ID#user-1", user.Id, user.Name, user.Email,
				user.PasswordHash, "AUTHOR", user.CreatedAt,
			).
			WillReturnError(assert.AnError)

		err = repo.CreateUser(context.Background(), mockTx{mock}, user)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, models.ErrUserAlreadyExists))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
