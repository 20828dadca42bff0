package api

import (
	"net/http"

	reqdto "sandwich-storefront/internal/handler/dto/request"
	resdto "sandwich-storefront/internal/handler/dto/response"
	"sandwich-storefront/internal/handler/httperr"
	"sandwich-storefront/internal/handler/middleware"
	"sandwich-storefront/internal/usecase/cart"
	"sandwich-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the shopper's cart. Every route runs behind
// middleware.CartSession and middleware.Notifications.
type CartHandler struct {
	cmds commands.CartCommands
}

func NewCartHandler(cmds commands.CartCommands) *CartHandler {
	return &CartHandler{cmds: cmds}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Success 200 {object} resdto.CartResponse
// @Failure 503 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	view, err := h.cmds.View(c.Request.Context(), middleware.GetCartSessionID(c))
	h.respond(c, http.StatusOK, view, err)
}

// @Summary Add sandwich to cart
// @Description Adds one unit; a sandwich already in the cart has its quantity increased
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddSandwichRequest true "Sandwich"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddSandwich(c *gin.Context) {
	var req reqdto.AddSandwichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddSandwich(c.Request.Context(), middleware.GetCartSessionID(c), req.SandwichID)
	h.respond(c, http.StatusOK, view, err)
}

// @Summary Add custom sandwich to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCustomRequest true "Builder selection"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/custom [post]
func (h *CartHandler) AddCustom(c *gin.Context) {
	var req reqdto.AddCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.AddCustom(c.Request.Context(), middleware.GetCartSessionID(c), req.ToSelection())
	h.respond(c, http.StatusOK, view, err)
}

// @Summary Remove cart line
// @Tags cart
// @Produce json
// @Param id path string true "Line ID"
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.cmds.RemoveItem(c.Request.Context(), middleware.GetCartSessionID(c), c.Param("id"))
	h.respond(c, http.StatusOK, view, err)
}

// @Summary Update cart line quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Line ID"
// @Param request body reqdto.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateQuantity(c.Request.Context(), middleware.GetCartSessionID(c), c.Param("id"), *req.Quantity)
	h.respond(c, http.StatusOK, view, err)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	view, err := h.cmds.Clear(c.Request.Context(), middleware.GetCartSessionID(c))
	h.respond(c, http.StatusOK, view, err)
}

// @Summary Apply promo code
// @Description A rejected code is not an error: applied is false and a notification explains it
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyPromoCodeRequest true "Code"
// @Success 200 {object} resdto.PromoApplyResponse
// @Failure 503 {object} httperr.Response
// @Router /api/cart/promo [post]
func (h *CartHandler) ApplyPromoCode(c *gin.Context) {
	var req reqdto.ApplyPromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ApplyPromoCode(c.Request.Context(), middleware.GetCartSessionID(c), req.NormalizedCode())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PromoApplyResponse{
		Applied: result.Applied,
		Cart:    resdto.FromCartView(result.View, middleware.DrainNotifications(c)),
	})
}

// @Summary Remove promo code
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart/promo [delete]
func (h *CartHandler) RemovePromoCode(c *gin.Context) {
	view, err := h.cmds.RemovePromoCode(c.Request.Context(), middleware.GetCartSessionID(c))
	h.respond(c, http.StatusOK, view, err)
}

func (h *CartHandler) respond(c *gin.Context, status int, view cart.View, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromCartView(view, middleware.DrainNotifications(c)))
}
