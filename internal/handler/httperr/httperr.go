package httperr

import (
	"net/http"

	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/cart"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
	// detail exposes err.Error() to the client
	detail bool
}

// checked in order; the first match wins
var mappings = []mapping{
	{errs.ErrSandwichNotFound, http.StatusNotFound, "Sandwich not found", false},
	{errs.ErrIngredientNotFound, http.StatusNotFound, "Ingredient not found", true},
	{errs.ErrPromoCodeNotFound, http.StatusNotFound, "Promo code not found", false},
	{errs.ErrOrderNotFound, http.StatusNotFound, "Order not found", false},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found", false},
	{errs.ErrPromoCodeDuplicate, http.StatusConflict, "Promo code already exists", false},
	{cartdomain.ErrEmptyCart, http.StatusUnprocessableEntity, "Cart is empty", false},
	{cart.ErrInvalidSession, http.StatusBadRequest, "Cart session required", false},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request data", true},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password", false},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password", false},
	{errs.ErrInactiveUser, http.StatusForbidden, "Account is inactive", false},
	{queries.ErrUserAccess, http.StatusForbidden, "Insufficient permissions", false},
	{errs.ErrStoreUnavailable, http.StatusServiceUnavailable, "Cart storage unavailable", false},
}

// Abort answers with the status registered for err, or 500.
func Abort(c *gin.Context, err error) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			var detail any
			if m.detail {
				detail = err.Error()
			}
			AbortWithError(c, m.status, err, m.message, detail)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
