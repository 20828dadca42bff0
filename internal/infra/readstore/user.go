package readstore

import (
	"context"

	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/infra/converter"
	"sandwich-storefront/internal/infra/db"
	"sandwich-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	findUserByID    = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`
	findUserByEmail = `SELECT ` + converter.UserColumns + ` FROM users WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := converter.ScanUser(r.db.QueryRow(ctx, findUserByID, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := converter.ScanUser(r.db.QueryRow(ctx, findUserByEmail, email))
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row *converter.UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: row.LastLoginAt(),
	}
}
