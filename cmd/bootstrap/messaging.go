package bootstrap

import (
	"context"
	"log/slog"

	"sandwich-storefront/internal/infra/messaging"
	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/config"
	"sandwich-storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewOrderPublisher,
	),
)

type closingPublisher interface {
	commands.OrderPublisher
	Close() error
}

// NewOrderPublisher falls back to logging the events when no broker is configured.
func NewOrderPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (commands.OrderPublisher, error) {
	var pub closingPublisher
	if cfg.RabbitMQ.URL == "" {
		logger.Warn("RABBITMQ_URL is not set, order events are only logged")
		pub = messaging.NewLogPublisher(logger)
	} else {
		rabbit, err := messaging.Dial(cfg.RabbitMQ, clk)
		if err != nil {
			return nil, err
		}
		pub = rabbit
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub, nil
}
