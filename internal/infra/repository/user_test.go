//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "password_hash", "role", "is_active", "last_login", "created_at", "updated_at"}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	email, err := user.NewEmail("admin@example.com")
	require.NoError(t, err)

	// ==================================================
	// success
	// ==================================================
	t.Run("success: find by email rebuilds the entity", func(t *testing.T) {
		mock := newMock(t)
		id := uuid.New()
		mock.ExpectQuery(`FROM users WHERE email = \$1`).
			WithArgs("admin@example.com").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(id.String(), "admin@example.com", "hash", "admin", true, now, now, now))

		got, err := repository.NewUserRepository().FindByEmail(ctx, mock, email)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, user.RoleAdmin, got.Role())
		require.NotNil(t, got.LastLogin())
		assert.True(t, got.LastLogin().Equal(now))
	})

	t.Run("success: create inserts the hashed password", func(t *testing.T) {
		mock := newMock(t)
		u := user.NewUser(email, "hash", user.RoleAdmin)
		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(u.ID(), "admin@example.com", "hash", "admin", true).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repository.NewUserRepository().Create(ctx, mock, u))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	// ==================================================
	// error
	// ==================================================
	t.Run("error: unknown email is NOT_FOUND", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM users`).WithArgs("admin@example.com").WillReturnError(pgx.ErrNoRows)

		_, err := repository.NewUserRepository().FindByEmail(ctx, mock, email)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: stored role outside the known set is DB_FAILURE", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM users`).
			WithArgs("admin@example.com").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow(uuid.NewString(), "admin@example.com", "hash", "root", true, now, now, now))

		_, err := repository.NewUserRepository().FindByEmail(ctx, mock, email)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
