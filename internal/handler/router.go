package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/handler/api"
	reqdto "sandwich-storefront/internal/handler/dto/request"
	"sandwich-storefront/internal/handler/middleware"
	"sandwich-storefront/internal/infra/metrics"
	"sandwich-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Catalog   *api.CatalogHandler
	Cart      *api.CartHandler
	Order     *api.OrderHandler
	PromoCode *api.PromoCodeHandler
}

// Observability is optional; a nil Gatherer leaves /metrics unregistered.
type Observability struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, obs Observability) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, obs)
	setupRoutes(engine, cfg, h, authMiddleware, obs)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, obs Observability) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(obs.Logger, cfg.Log))
	if obs.Metrics != nil {
		engine.Use(middleware.Metrics(obs.Metrics))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, obs Observability) {
	engine.GET("/health", healthCheck)
	if obs.Gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(obs.Gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sandwiches", Handler: h.Catalog.ListSandwiches},
			{Method: http.MethodGet, Path: "/sandwiches/:id", Handler: h.Catalog.GetSandwich},
			{Method: http.MethodGet, Path: "/ingredients", Handler: h.Catalog.ListIngredients},
			{Method: http.MethodGet, Path: "/builder/options", Handler: h.Catalog.BuilderOptions},
		})

		shopper := apiGroup.Group("")
		shopper.Use(middleware.CartSession(cfg.Cookie, cfg.Shop.CartTTL), middleware.Notifications())
		{
			addRoutes(shopper, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.View},
				{Method: http.MethodDelete, Path: "/cart", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.AddSandwich},
				{Method: http.MethodPatch, Path: "/cart/items/:id", Handler: h.Cart.UpdateQuantity},
				{Method: http.MethodDelete, Path: "/cart/items/:id", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/cart/custom", Handler: h.Cart.AddCustom},
				{Method: http.MethodPost, Path: "/cart/promo", Handler: h.Cart.ApplyPromoCode},
				{Method: http.MethodDelete, Path: "/cart/promo", Handler: h.Cart.RemovePromoCode},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Order.Checkout},
				{Method: http.MethodGet, Path: "/orders/:id/payment", Handler: h.Order.Payment},
				{Method: http.MethodGet, Path: "/orders/:id/confirmation", Handler: h.Order.Confirmation},
			})
		}

		requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: requireAuth},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: requireAuth},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/sandwiches", Handler: h.Catalog.CreateSandwich},
				{Method: http.MethodPatch, Path: "/sandwiches/:id", Handler: h.Catalog.UpdateSandwich},
				{Method: http.MethodDelete, Path: "/sandwiches/:id", Handler: h.Catalog.DeleteSandwich},
				{Method: http.MethodPost, Path: "/ingredients", Handler: h.Catalog.CreateIngredient},
				{Method: http.MethodPatch, Path: "/ingredients/:id", Handler: h.Catalog.UpdateIngredient},
				{Method: http.MethodDelete, Path: "/ingredients/:id", Handler: h.Catalog.DeleteIngredient},
				{Method: http.MethodGet, Path: "/promo-codes", Handler: h.PromoCode.List},
				{Method: http.MethodPost, Path: "/promo-codes", Handler: h.PromoCode.Create},
				{Method: http.MethodGet, Path: "/promo-codes/:id", Handler: h.PromoCode.Get},
				{Method: http.MethodPatch, Path: "/promo-codes/:id", Handler: h.PromoCode.Update},
				{Method: http.MethodDelete, Path: "/promo-codes/:id", Handler: h.PromoCode.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
