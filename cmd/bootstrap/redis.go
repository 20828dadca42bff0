package bootstrap

import (
	"context"
	"log/slog"

	"sandwich-storefront/internal/infra/kvstore"
	"sandwich-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*kvstore.Client, error) {
	client, err := kvstore.New(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing redis client")
			return client.Close()
		},
	})

	return client, nil
}
