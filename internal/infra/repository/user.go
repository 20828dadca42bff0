package repository

import (
	"context"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/infra/converter"
	"sandwich-storefront/internal/infra/db"

	"github.com/google/uuid"
)

const (
	selectUserByEmail = `SELECT ` + converter.UserColumns + ` FROM users WHERE email = $1`
	insertUser        = `INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5)`
	updateLastLogin   = `UPDATE users SET last_login = now() WHERE id = $1`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(ctx context.Context, tx db.DBTX, email user.Email) (*user.User, error) {
	row, err := converter.ScanUser(tx.QueryRow(ctx, selectUserByEmail, email.Value()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	u, err := row.Domain()
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, insertUser, u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, updateLastLogin, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
