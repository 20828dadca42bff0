//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/handler/api"
	resdto "sandwich-storefront/internal/handler/dto/response"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/internal/usecase/queries"
	"sandwich-storefront/tests/common/builder"
	"sandwich-storefront/tests/common/httptest"
	"sandwich-storefront/tests/common/testutil"
	commandsmock "sandwich-storefront/tests/mock/commands"
	queriesmock "sandwich-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/sandwiches", s.handler.ListSandwiches)
	s.router.GET("/sandwiches/:id", s.handler.GetSandwich)
	s.router.GET("/ingredients", s.handler.ListIngredients)
	s.router.GET("/builder/options", s.handler.BuilderOptions)
	s.router.POST("/admin/sandwiches", s.handler.CreateSandwich)
	s.router.PATCH("/admin/sandwiches/:id", s.handler.UpdateSandwich)
	s.router.DELETE("/admin/sandwiches/:id", s.handler.DeleteSandwich)
	s.router.POST("/admin/ingredients", s.handler.CreateIngredient)
	s.router.PATCH("/admin/ingredients/:id", s.handler.UpdateIngredient)
	s.router.DELETE("/admin/ingredients/:id", s.handler.DeleteIngredient)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

// ================================================================================
// Public reads
// ================================================================================

func (s *CatalogHandlerTestSuite) TestListSandwiches() {
	s.Run("success: returns the menu", func() {
		views := []*queries.SandwichView{
			builder.NewSandwichBuilder().BuildView(),
			builder.NewSandwichBuilder().WithName("Le Végétarien").WithPrice("7").BuildView(),
		}
		s.mockQueries.EXPECT().ListSandwiches(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sandwiches", nil, "")

		var body struct {
			Sandwiches []resdto.SandwichResponse `json:"sandwiches"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Sandwiches, 2)
		s.Equal("8.50", body.Sandwiches[0].Price)
		s.Equal("7.00", body.Sandwiches[1].Price)
		s.Equal(catalog.DefaultImage, body.Sandwiches[0].Image)
	})

	s.Run("success: empty menu encodes as an empty list", func() {
		s.mockQueries.EXPECT().ListSandwiches(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sandwiches", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"sandwiches":[]}`, rec.Body.String())
	})

	s.Run("error: 500 on read failure", func() {
		s.mockQueries.EXPECT().ListSandwiches(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sandwiches", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CatalogHandlerTestSuite) TestGetSandwich() {
	view := builder.NewSandwichBuilder().BuildView()

	s.Run("success: returns the sandwich", func() {
		s.mockQueries.EXPECT().GetSandwich(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sandwiches/"+view.ID.String(), nil, "")

		var body resdto.SandwichResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sandwiches/abc", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for unknown sandwich", func() {
		s.mockQueries.EXPECT().GetSandwich(gomock.Any(), view.ID).Return(nil, errs.ErrSandwichNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sandwiches/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Sandwich not found")
	})
}

func (s *CatalogHandlerTestSuite) TestListIngredients() {
	s.Run("success: forwards type and search filters", func() {
		s.mockQueries.EXPECT().ListIngredients(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f catalog.IngredientFilter) ([]*queries.IngredientView, error) {
				s.Require().NotNil(f.Type)
				s.Equal(catalog.TypeSauce, *f.Type)
				s.Equal("may", f.Search)
				return []*queries.IngredientView{
					builder.NewIngredientBuilder().WithName("Mayonnaise").WithType(catalog.TypeSauce).WithPrice("0.50").BuildView(),
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ingredients?type=sauce&search=may", nil, "")

		var body struct {
			Ingredients []resdto.IngredientResponse `json:"ingredients"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Ingredients, 1)
		s.Equal("sauce", body.Ingredients[0].Type)
		s.Equal("0.50", body.Ingredients[0].Price)
	})

	s.Run("success: no filter lists everything", func() {
		s.mockQueries.EXPECT().ListIngredients(gomock.Any(), catalog.IngredientFilter{}).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ingredients", nil, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for unknown type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ingredients?type=cheese", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *CatalogHandlerTestSuite) TestBuilderOptions() {
	s.Run("success: returns the four steps in order", func() {
		steps := []*queries.BuilderStepView{
			{Step: 1, Title: "Choisissez votre pain", Type: "bread", Required: true},
			{Step: 2, Title: "Choisissez votre protéine", Type: "protein", Required: true},
			{Step: 3, Title: "Ajoutez vos légumes", Type: "veggie", Multi: true, Required: true},
			{Step: 4, Title: "Choisissez vos sauces", Type: "sauce", Multi: true},
		}
		s.mockQueries.EXPECT().BuilderOptions(gomock.Any()).Return(steps, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/builder/options", nil, "")

		var body struct {
			Steps []resdto.BuilderStepResponse `json:"steps"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Steps, 4)
		s.Equal("veggie", body.Steps[2].Type)
		s.True(body.Steps[2].Multi)
		s.False(body.Steps[3].Required)
		s.NotNil(body.Steps[0].Options)
	})
}

// ================================================================================
// Admin writes
// ================================================================================

func (s *CatalogHandlerTestSuite) TestCreateSandwich() {
	url := "/admin/sandwiches"
	b := builder.NewSandwichBuilder()
	reqDTO := b.BuildCreateDTO()

	s.Run("success: returns 201 with the stored sandwich", func() {
		s.mockCommands.EXPECT().CreateSandwich(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateSandwichInput) (*catalog.Sandwich, error) {
				s.Equal(b.Name, in.Name)
				s.Equal("8.50", in.Price.StringFixed(2))
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetSandwich(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO, "")

		var body resdto.SandwichResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID.String(), body.ID)
	})

	s.Run("success: image defaults to the placeholder", func() {
		req := testutil.DtoMap(s.T(), reqDTO, testutil.Field("image", nil))
		s.mockCommands.EXPECT().CreateSandwich(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateSandwichInput) (*catalog.Sandwich, error) {
				s.Equal(catalog.DefaultImage, in.Image)
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetSandwich(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: description (required)", mutate: testutil.Field("description", nil)},
			{name: "missing field: price (required)", mutate: testutil.Field("price", nil)},
			{name: "malformed price", mutate: testutil.Field("price", "huit")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqDTO, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 when the domain rejects the price", func() {
		s.mockCommands.EXPECT().CreateSandwich(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(catalog.ErrPriceNotPositive, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqDTO, testutil.Field("price", "0")), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
		s.Contains(rec.Body.String(), "price must be greater than zero")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateSandwich() {
	b := builder.NewSandwichBuilder()
	url := "/admin/sandwiches/" + b.ID.String()

	s.Run("success: omitted fields stay nil in the patch", func() {
		s.mockCommands.EXPECT().UpdateSandwich(gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p catalog.SandwichPatch) (*catalog.Sandwich, error) {
				s.Require().NotNil(p.Name)
				s.Equal("Le Parisien", *p.Name)
				s.Nil(p.Description)
				s.Nil(p.Price)
				s.Nil(p.Image)
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetSandwich(gomock.Any(), b.ID).Return(b.WithName("Le Parisien").BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Le Parisien"}, "")

		var body resdto.SandwichResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Le Parisien", body.Name)
	})

	s.Run("error: 404 for unknown sandwich", func() {
		s.mockCommands.EXPECT().UpdateSandwich(gomock.Any(), b.ID, gomock.Any()).
			Return(nil, errs.ErrSandwichNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"price": "9.00"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Sandwich not found")
	})
}

func (s *CatalogHandlerTestSuite) TestDeleteSandwich() {
	id := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteSandwich(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/sandwiches/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for unknown sandwich", func() {
		s.mockCommands.EXPECT().DeleteSandwich(gomock.Any(), id).Return(errs.ErrSandwichNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/sandwiches/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Sandwich not found")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateIngredient() {
	url := "/admin/ingredients"
	b := builder.NewIngredientBuilder().WithType(catalog.TypeVeggie).WithName("Tomate").WithPrice("0.50")
	reqDTO := b.BuildCreateDTO()

	s.Run("success: returns 201 with the stored ingredient", func() {
		s.mockCommands.EXPECT().CreateIngredient(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateIngredientInput) (*catalog.Ingredient, error) {
				s.Equal(catalog.TypeVeggie, in.Type)
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetIngredient(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO, "")

		var body resdto.IngredientResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("veggie", body.Type)
		s.Equal("Tomate", body.Name)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: type (required)", mutate: testutil.Field("type", nil)},
			{name: "invalid type", mutate: testutil.Field("type", "cheese")},
			{name: "missing field: price (required)", mutate: testutil.Field("price", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqDTO, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateIngredient() {
	b := builder.NewIngredientBuilder()
	url := "/admin/ingredients/" + b.ID.String()

	s.Run("success: type change is parsed", func() {
		s.mockCommands.EXPECT().UpdateIngredient(gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p catalog.IngredientPatch) (*catalog.Ingredient, error) {
				s.Require().NotNil(p.Type)
				s.Equal(catalog.TypeProtein, *p.Type)
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().GetIngredient(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"type": "protein"}, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for unknown ingredient", func() {
		s.mockCommands.EXPECT().UpdateIngredient(gomock.Any(), b.ID, gomock.Any()).
			Return(nil, errs.ErrIngredientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Seigle"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ingredient not found")
	})
}

func (s *CatalogHandlerTestSuite) TestDeleteIngredient() {
	id := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteIngredient(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/ingredients/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})
}
