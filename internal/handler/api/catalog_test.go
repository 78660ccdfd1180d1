//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"decor-market/internal/handler/api"
	resdto "decor-market/internal/handler/dto/response"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"
	"decor-market/tests/common/httptest"
	queriesmock "decor-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	catalogQueries   *queriesmock.MockCatalogQueries
	pricingQueries   *queriesmock.MockPricingQueries
	analyticsQueries *queriesmock.MockAnalyticsQueries
	actors           testActors
	router           *gin.Engine
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalogQueries = queriesmock.NewMockCatalogQueries(s.ctrl)
	s.pricingQueries = queriesmock.NewMockPricingQueries(s.ctrl)
	s.analyticsQueries = queriesmock.NewMockAnalyticsQueries(s.ctrl)
	s.actors = newTestActors()

	handler := api.NewCatalogHandler(s.catalogQueries, s.pricingQueries, s.analyticsQueries)
	authMw := s.actors.authMiddleware()

	s.router = gin.New()
	apiGroup := s.router.Group("/api")
	apiGroup.GET("/services", handler.ListServices)
	apiGroup.GET("/pricing/quote", handler.Quote)
	admin := apiGroup.Group("/admin")
	admin.Use(authMw.RequireAuth(), authMw.RequireAdmin())
	admin.GET("/analytics/revenue", handler.Revenue)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListServices() {
	s.Run("lists active services without auth", func() {
		views := []*queries.ServiceView{
			{ID: uuid.New(), Name: "Wedding Decoration", UnitCost: 5000, Unit: "event", Active: true},
			{ID: uuid.New(), Name: "Balloon Arch", UnitCost: 800, Unit: "piece", Active: true},
		}
		s.catalogQueries.EXPECT().ListServices(gomock.Any()).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/services", nil, "")

		var resp []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
		s.Equal("Wedding Decoration", resp[0].Name)
	})
}

func (s *CatalogHandlerTestSuite) TestQuote() {
	s.Run("quotes a service with a coupon", func() {
		serviceID := uuid.New()
		code := "NEWUSER10"
		s.pricingQueries.EXPECT().
			Quote(gomock.Any(), serviceID, gomock.Any()).
			Return(&queries.PricingQuoteView{
				ServiceID:      serviceID,
				Original:       5000,
				DiscountCode:   &code,
				DiscountAmount: 500,
				Final:          4500,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/pricing/quote?service_id="+serviceID.String()+"&coupon_code=NEWUSER10", nil, "")

		var resp resdto.PricingQuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(500), resp.DiscountAmount)
		s.Equal(int64(4500), resp.Final)
	})

	s.Run("malformed service id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pricing/quote?service_id=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid service ID format")
	})

	s.Run("unknown coupon", func() {
		serviceID := uuid.New()
		s.pricingQueries.EXPECT().
			Quote(gomock.Any(), serviceID, gomock.Any()).
			Return(nil, errs.ErrCouponNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/pricing/quote?service_id="+serviceID.String()+"&coupon_code=GHOST", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Coupon not found")
	})
}

func (s *CatalogHandlerTestSuite) TestRevenue() {
	s.Run("admin reads revenue aggregates", func() {
		s.analyticsQueries.EXPECT().
			Revenue(gomock.Any(), s.actors.admin).
			Return(&queries.RevenueView{CompletedBookings: 7, PaidBookings: 9, TotalRevenue: 41500}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics/revenue", nil, adminToken)

		var resp resdto.RevenueResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(41500), resp.TotalRevenue)
	})

	s.Run("non-admins are blocked by middleware", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/analytics/revenue", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}
