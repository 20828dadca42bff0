package middleware

import (
	"time"

	"sandwich-storefront/internal/infra/notify"
	"sandwich-storefront/internal/pkg/config"
	"sandwich-storefront/internal/pkg/cookie"
	"sandwich-storefront/internal/usecase/cart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartSessionHeader = "X-Cart-Session"
	ctxCartSessionKey = "cart_session"
)

// CartSession identifies the shopper. The header wins over the cookie so
// clients without cookies keep their cart; unknown or malformed ids are
// replaced with a fresh one. The id is echoed in both on every response.
func CartSession(cfg config.CookieConfig, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CartSessionHeader)
		if sessionID == "" {
			sessionID = cookie.GetCartSession(c)
		}
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		c.Set(ctxCartSessionKey, sessionID)
		c.Header(CartSessionHeader, sessionID)
		cookie.SetCartSession(c, cfg, sessionID, ttl)
		c.Next()
	}
}

func GetCartSessionID(c *gin.Context) string {
	if v, exists := c.Get(ctxCartSessionKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// Notifications attaches a collector for what the cart tells the shopper
// while the request runs.
func Notifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := notify.WithCollector(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// DrainNotifications returns the notifications raised so far in this request.
func DrainNotifications(c *gin.Context) []cart.Notification {
	return notify.FromContext(c.Request.Context()).Drain()
}
