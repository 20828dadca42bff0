package queries

import (
	"context"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserAccess = errs.New("user access denied")

type UserQueries interface {
	// GetCurrentUser returns the signed-in back-office account.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !u.IsActive {
		return nil, errs.ErrInactiveUser
	}
	if !user.Role(u.Role).AtLeast(user.RoleAdmin) {
		return nil, ErrUserAccess
	}

	return u, nil
}
