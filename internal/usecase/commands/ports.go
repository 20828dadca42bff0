package commands

import (
	"context"

	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/usecase/cart"

	"github.com/google/uuid"
)

// Write-side ports; implementations live in infra and usecase/cart.

type SessionOpener interface {
	Open(ctx context.Context, sessionID string) (*cart.Engine, error)
}

type CatalogReader interface {
	FindSandwich(ctx context.Context, id uuid.UUID) (*catalog.Sandwich, error)
	FindIngredientsByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Ingredient, error)
}

type OrderPublisher interface {
	PublishOrderSubmitted(ctx context.Context, details *order.Details) error
}
