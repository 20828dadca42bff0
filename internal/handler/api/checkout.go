package api

import (
	"net/http"

	reqdto "sandwich-storefront/internal/handler/dto/request"
	resdto "sandwich-storefront/internal/handler/dto/response"
	"sandwich-storefront/internal/handler/httperr"
	"sandwich-storefront/internal/handler/middleware"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.CheckoutCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.CheckoutCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Submit order
// @Description Hands the cart off to payment and empties it. Address fields may be omitted while a promo code pins the delivery address.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Customer"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	details, err := h.cmds.SubmitOrder(c.Request.Context(), middleware.GetCartSessionID(c), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmittedOrder(details, middleware.DrainNotifications(c)))
}

// @Summary Payment progress
// @Description Simulated gateway stage derived from the time since submission
// @Tags checkout
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id}/payment [get]
func (h *OrderHandler) Payment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.Payment(c.Request.Context(), middleware.GetCartSessionID(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary Order confirmation
// @Tags checkout
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id}/confirmation [get]
func (h *OrderHandler) Confirmation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	conf, err := h.q.Confirmation(c.Request.Context(), middleware.GetCartSessionID(c), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmation(conf))
}
