package components

import (
	"log/slog"

	"sandwich-storefront/internal/handler"
	"sandwich-storefront/internal/handler/api"
	"sandwich-storefront/internal/handler/middleware"
	"sandwich-storefront/internal/infra/metrics"
	"sandwich-storefront/internal/pkg/config"
	"sandwich-storefront/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewPromoCodeHandler,
		NewTokenValidator,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

func NewTokenValidator(s *jwt.Service) middleware.TokenValidator {
	return s
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer

	Auth      *api.AuthHandler
	Catalog   *api.CatalogHandler
	Cart      *api.CartHandler
	Order     *api.OrderHandler
	PromoCode *api.PromoCodeHandler
}

func registerRoutes(p RouterParams) error {
	return handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{
			Auth:      p.Auth,
			Catalog:   p.Catalog,
			Cart:      p.Cart,
			Order:     p.Order,
			PromoCode: p.PromoCode,
		},
		p.AuthMiddleware,
		handler.Observability{
			Logger:   p.Logger,
			Metrics:  p.Metrics,
			Gatherer: p.Gatherer,
		},
	)
}
