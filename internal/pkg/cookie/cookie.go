package cookie

import (
	"net/http"
	"time"

	"sandwich-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	CartSessionCookieName = "cart_session"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	set(c, cfg, AccessTokenCookieName, token, int(expiry.Seconds()))
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, AccessTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// SetCartSession keeps the shopper's cart session alive for as long as the cart itself.
func SetCartSession(c *gin.Context, cfg config.CookieConfig, sessionID string, ttl time.Duration) {
	set(c, cfg, CartSessionCookieName, sessionID, int(ttl.Seconds()))
}

func GetCartSession(c *gin.Context) string {
	id, _ := c.Cookie(CartSessionCookieName)
	return id
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
