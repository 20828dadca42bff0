package shared

import (
	"context"

	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Sandwiches() SandwichRepository
	Ingredients() IngredientRepository
	PromoCodes() PromoCodeRepository
	Users() UserRepository
	DB() db.DBTX
}

// FindForUpdate methods lock the row until the transaction ends.

type SandwichRepository interface {
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.Sandwich, error)
	Create(ctx context.Context, tx db.DBTX, s *catalog.Sandwich) error
	Update(ctx context.Context, tx db.DBTX, s *catalog.Sandwich) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type IngredientRepository interface {
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.Ingredient, error)
	Create(ctx context.Context, tx db.DBTX, in *catalog.Ingredient) error
	Update(ctx context.Context, tx db.DBTX, in *catalog.Ingredient) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PromoCodeRepository interface {
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*promo.PromoCode, error)
	Create(ctx context.Context, tx db.DBTX, p *promo.PromoCode) error
	Update(ctx context.Context, tx db.DBTX, p *promo.PromoCode) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, tx db.DBTX, email user.Email) (*user.User, error)
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
