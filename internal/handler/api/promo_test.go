//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/handler/api"
	reqdto "sandwich-storefront/internal/handler/dto/request"
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

type PromoCodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromoCodeCommands
	mockQueries  *queriesmock.MockPromoCodeQueries
	handler      *api.PromoCodeHandler
}

func (s *PromoCodeHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *PromoCodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromoCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromoCodeQueries(s.mockCtrl)
	s.handler = api.NewPromoCodeHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/promo-codes", s.handler.List)
	s.router.GET("/admin/promo-codes/:id", s.handler.Get)
	s.router.POST("/admin/promo-codes", s.handler.Create)
	s.router.PATCH("/admin/promo-codes/:id", s.handler.Update)
	s.router.DELETE("/admin/promo-codes/:id", s.handler.Delete)
}

func (s *PromoCodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromoCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromoCodeHandlerTestSuite))
}

func (s *PromoCodeHandlerTestSuite) TestList() {
	s.Run("success: inactive codes are listed too", func() {
		views := []*queries.PromoCodeView{
			builder.NewPromoCodeBuilder().BuildView(),
			builder.NewPromoCodeBuilder().WithCode("ETE2024").AsInactive().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/promo-codes", nil, "")

		var body struct {
			PromoCodes []resdto.PromoCodeResponse `json:"promo_codes"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.PromoCodes, 2)
		s.True(body.PromoCodes[0].Active)
		s.False(body.PromoCodes[1].Active)
		s.Equal("3.00", body.PromoCodes[0].Discount)
		s.Equal("75002", body.PromoCodes[0].DeliveryZipcode)
	})
}

func (s *PromoCodeHandlerTestSuite) TestGet() {
	view := builder.NewPromoCodeBuilder().BuildView()

	s.Run("success: returns the code", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/promo-codes/"+view.ID.String(), nil, "")

		var body resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("NOEL2025", body.Code)
		s.Equal("12 rue de la Paix", body.DeliveryAddress)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), view.ID).Return(nil, errs.ErrPromoCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/promo-codes/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Promo code not found")
	})
}

func (s *PromoCodeHandlerTestSuite) TestCreate() {
	url := "/admin/promo-codes"
	b := builder.NewPromoCodeBuilder()
	reqDTO := b.BuildCreateDTO()

	s.Run("success: returns 201 with the stored code", func() {
		s.mockCommands.EXPECT().CreatePromoCode(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreatePromoCodeInput) (*promo.PromoCode, error) {
				s.Equal("NOEL2025", in.Code)
				s.Equal("3.00", in.Discount.StringFixed(2))
				s.Equal(b.Address(), in.Address)
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO, "")

		var body resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID.String(), body.ID)
	})

	s.Run("success: lower-case input passes validation", func() {
		s.mockCommands.EXPECT().CreatePromoCode(gomock.Any(), gomock.Any()).Return(b.BuildDomain(), nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqDTO, testutil.Field("code", "noel2025")), "")

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: code (required)", mutate: testutil.Field("code", nil)},
			{name: "code too short", mutate: testutil.Field("code", "AB")},
			{name: "code with symbols", mutate: testutil.Field("code", "NOEL-2025")},
			{name: "missing field: discount (required)", mutate: testutil.Field("discount", nil)},
			{name: "missing field: delivery_address (required)", mutate: testutil.Field("delivery_address", nil)},
			{name: "missing field: delivery_city (required)", mutate: testutil.Field("delivery_city", nil)},
			{name: "zipcode not five digits", mutate: testutil.Field("delivery_zipcode", "7500")},
			{name: "zipcode with letters", mutate: testutil.Field("delivery_zipcode", "75OO2")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqDTO, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockCommands.EXPECT().CreatePromoCode(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrPromoCodeDuplicate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqDTO, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Promo code already exists")
	})

	s.Run("error: 400 for a zero discount", func() {
		s.mockCommands.EXPECT().CreatePromoCode(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(promo.ErrZeroDiscount, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqDTO, testutil.Field("discount", "0")), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})
}

func (s *PromoCodeHandlerTestSuite) TestUpdate() {
	b := builder.NewPromoCodeBuilder()
	url := "/admin/promo-codes/" + b.ID.String()

	s.Run("success: deactivates the code", func() {
		inactive := builder.NewPromoCodeBuilder().With(func(p *builder.PromoCodeBuilder) { p.ID = b.ID }).AsInactive().BuildView()
		s.mockCommands.EXPECT().UpdatePromoCode(gomock.Any(), b.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p promo.Patch) (*promo.PromoCode, error) {
				s.Require().NotNil(p.Active)
				s.False(*p.Active)
				s.Nil(p.Discount)
				return b.BuildDomain(), nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), b.ID).Return(inactive, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"active": false}, "")

		var body resdto.PromoCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Active)
	})

	s.Run("error: 400 for malformed zipcode", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delivery_zipcode": "abc"}, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PromoCodeHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().DeletePromoCode(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/promo-codes/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockCommands.EXPECT().DeletePromoCode(gomock.Any(), id).Return(errs.ErrPromoCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/promo-codes/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Promo code not found")
	})
}
