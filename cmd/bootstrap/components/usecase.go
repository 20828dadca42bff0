package components

import (
	"context"
	"log/slog"

	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/config"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(ensureAdmin),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewPromoCodeCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewPromoCodeQueries,
		NewOrderQueries,
	),
)

func NewOrderQueries(reader queries.OrderReader, clk clock.Clock, cfg config.Config) queries.OrderQueries {
	return queries.NewOrderQueries(reader, clk, queries.OrderQueriesConfig{
		PaymentStepInterval: cfg.Shop.PaymentStepInterval,
		DeliveryEstimate:    cfg.Shop.DeliveryEstimate,
	})
}

// ensureAdmin seeds the back-office account when ADMIN_EMAIL and ADMIN_PASSWORD are set.
func ensureAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
				return err
			}
			logger.Info("admin account ready", "email", cfg.Admin.Email)
			return nil
		},
	})
}
