package api

import (
	"net/http"

	reqdto "sandwich-storefront/internal/handler/dto/request"
	resdto "sandwich-storefront/internal/handler/dto/response"
	"sandwich-storefront/internal/handler/httperr"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoCodeHandler struct {
	cmds commands.PromoCodeCommands
	q    queries.PromoCodeQueries
}

func NewPromoCodeHandler(cmds commands.PromoCodeCommands, q queries.PromoCodeQueries) *PromoCodeHandler {
	return &PromoCodeHandler{cmds: cmds, q: q}
}

// @Summary List promo codes
// @Description Newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PromoCodeResponse
// @Router /api/admin/promo-codes [get]
func (h *PromoCodeHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"promo_codes": resdto.FromPromoCodeList(items)})
}

// @Summary Get promo code
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo code ID"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/promo-codes/{id} [get]
func (h *PromoCodeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoCodeView(view))
}

// @Summary Create promo code
// @Description The code is stored upper-cased and starts active
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePromoCodeRequest true "Promo code"
// @Success 201 {object} resdto.PromoCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/promo-codes [post]
func (h *PromoCodeHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.CreatePromoCode(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), p.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promo code", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPromoCodeView(view))
}

// @Summary Update promo code
// @Description Partial update of the discount, delivery fields or active flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promo code ID"
// @Param request body reqdto.UpdatePromoCodeRequest true "Changes"
// @Success 200 {object} resdto.PromoCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/promo-codes/{id} [patch]
func (h *PromoCodeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.UpdatePromoCode(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promo code", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoCodeView(view))
}

// @Summary Delete promo code
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Promo code ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/promo-codes/{id} [delete]
func (h *PromoCodeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeletePromoCode(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
