package components

import (
	"context"
	"log/slog"
	"time"

	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/infra/kvstore"
	"sandwich-storefront/internal/infra/metrics"
	"sandwich-storefront/internal/infra/notify"
	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/config"
	"sandwich-storefront/internal/usecase/cart"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

const minEvictInterval = time.Second

// StoresModule holds shopper state: carts, submitted orders and the engines serving them.
var StoresModule = fx.Module("stores",
	fx.Provide(
		fx.Annotate(
			NewSessionStores,
			fx.As(new(cart.StoreFactory)),
		),
		fx.Annotate(
			NewOrderHandoff,
			fx.As(new(cart.OrderHandoff)),
			fx.As(new(queries.OrderReader)),
		),
		fx.Annotate(
			notify.NewNotifier,
			fx.As(new(cart.Notifier)),
		),
		NewCartObserver,
		fx.Annotate(
			NewCartSessions,
			fx.As(new(commands.SessionOpener)),
		),
	),
)

func NewSessionStores(client *kvstore.Client, cfg config.Config) *kvstore.SessionStores {
	return kvstore.NewSessionStores(client, cfg.Shop.CartTTL)
}

func NewOrderHandoff(client *kvstore.Client, cfg config.Config) *kvstore.OrderHandoff {
	return kvstore.NewOrderHandoff(client, cfg.Shop.OrderHandoffTTL)
}

func NewCartObserver(m *metrics.Metrics) cart.Observer {
	return m
}

type SessionsParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Stores    cart.StoreFactory
	Lookup    cart.PromoLookup
	Handoff   cart.OrderHandoff
	Notifier  cart.Notifier
	Observer  cart.Observer
	Clock     clock.Clock
	Logger    *slog.Logger
}

// NewCartSessions also runs idle eviction for the lifetime of the app.
func NewCartSessions(p SessionsParams) (*cart.Sessions, error) {
	fee, threshold, err := p.Config.Shop.ShippingAmounts()
	if err != nil {
		return nil, err
	}

	sessions := cart.NewSessions(p.Stores, p.Lookup, p.Handoff, p.Notifier, p.Observer, p.Clock, p.Logger,
		cart.SessionsConfig{
			IdleTTL: p.Config.Shop.SessionIdleTTL,
			Pricing: cartdomain.Pricing{ShippingFee: fee, FreeShippingThreshold: threshold},
		})

	if p.Config.Shop.SessionIdleTTL > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		interval := max(p.Config.Shop.SessionIdleTTL/2, minEvictInterval)
		p.Lifecycle.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go sessions.Run(ctx, interval)
				return nil
			},
			OnStop: func(_ context.Context) error {
				cancel()
				return nil
			},
		})
	}

	return sessions, nil
}
