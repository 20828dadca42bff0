package api

import (
	"net/http"

	reqdto "sandwich-storefront/internal/handler/dto/request"
	resdto "sandwich-storefront/internal/handler/dto/response"
	"sandwich-storefront/internal/handler/httperr"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List sandwiches
// @Description List the sandwich menu ordered by name
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.SandwichResponse
// @Failure 500 {object} httperr.Response
// @Router /api/sandwiches [get]
func (h *CatalogHandler) ListSandwiches(c *gin.Context) {
	items, err := h.q.ListSandwiches(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sandwiches": resdto.FromSandwichList(items)})
}

// @Summary Get sandwich
// @Tags catalog
// @Produce json
// @Param id path string true "Sandwich ID"
// @Success 200 {object} resdto.SandwichResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sandwiches/{id} [get]
func (h *CatalogHandler) GetSandwich(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.q.GetSandwich(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSandwichView(view))
}

// @Summary List ingredients
// @Description List ingredients by type then name, optionally filtered
// @Tags catalog
// @Produce json
// @Param type query string false "bread, protein, veggie or sauce"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {array} resdto.IngredientResponse
// @Failure 400 {object} httperr.Response
// @Router /api/ingredients [get]
func (h *CatalogHandler) ListIngredients(c *gin.Context) {
	var query reqdto.IngredientQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.q.ListIngredients(c.Request.Context(), query.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": resdto.FromIngredientList(items)})
}

// @Summary Custom sandwich builder steps
// @Description The four builder steps with their ingredient options
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.BuilderStepResponse
// @Router /api/builder/options [get]
func (h *CatalogHandler) BuilderOptions(c *gin.Context) {
	steps, err := h.q.BuilderOptions(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": resdto.FromBuilderSteps(steps)})
}

// @Summary Create sandwich
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSandwichRequest true "Sandwich"
// @Success 201 {object} resdto.SandwichResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/sandwiches [post]
func (h *CatalogHandler) CreateSandwich(c *gin.Context) {
	var req reqdto.CreateSandwichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	s, err := h.cmds.CreateSandwich(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetSandwich(c.Request.Context(), s.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load sandwich", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSandwichView(view))
}

// @Summary Update sandwich
// @Description Partial update; omitted fields are kept
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sandwich ID"
// @Param request body reqdto.UpdateSandwichRequest true "Changes"
// @Success 200 {object} resdto.SandwichResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/sandwiches/{id} [patch]
func (h *CatalogHandler) UpdateSandwich(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSandwichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.UpdateSandwich(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetSandwich(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load sandwich", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSandwichView(view))
}

// @Summary Delete sandwich
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Sandwich ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/sandwiches/{id} [delete]
func (h *CatalogHandler) DeleteSandwich(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteSandwich(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create ingredient
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIngredientRequest true "Ingredient"
// @Success 201 {object} resdto.IngredientResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/ingredients [post]
func (h *CatalogHandler) CreateIngredient(c *gin.Context) {
	var req reqdto.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", err.Error())
		return
	}
	ing, err := h.cmds.CreateIngredient(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetIngredient(c.Request.Context(), ing.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load ingredient", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIngredientView(view))
}

// @Summary Update ingredient
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ingredient ID"
// @Param request body reqdto.UpdateIngredientRequest true "Changes"
// @Success 200 {object} resdto.IngredientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/ingredients/{id} [patch]
func (h *CatalogHandler) UpdateIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToPatch()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", err.Error())
		return
	}
	if _, err := h.cmds.UpdateIngredient(c.Request.Context(), id, p); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.GetIngredient(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load ingredient", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIngredientView(view))
}

// @Summary Delete ingredient
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Ingredient ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/ingredients/{id} [delete]
func (h *CatalogHandler) DeleteIngredient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteIngredient(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var errInvalidID = errs.New("invalid id")

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
