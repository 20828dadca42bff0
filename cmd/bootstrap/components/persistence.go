package components

import (
	"sandwich-storefront/internal/infra/db"
	"sandwich-storefront/internal/infra/readstore"
	"sandwich-storefront/internal/infra/uow"
	"sandwich-storefront/internal/usecase/cart"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"
	"sandwich-storefront/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Catalog
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
			fx.As(new(commands.CatalogReader)),
		),
		// PromoCode
		fx.Annotate(
			readstore.NewPromoCodeReadStore,
			fx.As(new(queries.PromoCodeReadStore)),
			fx.As(new(cart.PromoLookup)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// repositories are opened per transaction by the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool)
}
