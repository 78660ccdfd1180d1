//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"decor-market/internal/domain/booking"
	"decor-market/internal/handler/api"
	reqdto "decor-market/internal/handler/dto/request"
	resdto "decor-market/internal/handler/dto/response"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/commands"
	"decor-market/internal/usecase/queries"
	"decor-market/tests/common/builder"
	"decor-market/tests/common/httptest"
	"decor-market/tests/common/testutil"
	commandsmock "decor-market/tests/mock/commands"
	queriesmock "decor-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	bookingCommands *commandsmock.MockBookingCommands
	assignCommands  *commandsmock.MockAssignmentCommands
	bookingQueries  *queriesmock.MockBookingQueries
	actors          testActors
	router          *gin.Engine
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookingCommands = commandsmock.NewMockBookingCommands(s.ctrl)
	s.assignCommands = commandsmock.NewMockAssignmentCommands(s.ctrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.ctrl)
	s.actors = newTestActors()

	handler := api.NewBookingHandler(s.bookingCommands, s.assignCommands, s.bookingQueries)
	authMw := s.actors.authMiddleware()

	s.router = gin.New()
	bookings := s.router.Group("/api/bookings")
	bookings.Use(authMw.RequireAuth())
	bookings.POST("", handler.CreateBooking)
	bookings.GET("", handler.ListBookings)
	bookings.GET("/:id", handler.GetBooking)
	bookings.DELETE("/:id", handler.CancelBooking)
	bookings.GET("/:id/receipt", handler.GetReceipt)
	bookings.PATCH("/:id/status", handler.SetStatus)
	bookings.POST("/:id/assign", authMw.RequireAdmin(), handler.AssignDecorators)
	bookings.POST("/:id/status/override", authMw.RequireAdmin(), handler.OverrideStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("customer creates a booking", func() {
		b := builder.NewBookingBuilder()
		view := b.BuildViewQuery()
		s.bookingCommands.EXPECT().
			Create(gomock.Any(), s.actors.customer, gomock.Any()).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", b.BuildCreateRequestDTO(), customerToken)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(view.BookingRef, resp.BookingRef)
		s.Equal(view.PriceFinal, resp.PriceFinal)
		s.Equal("pending", resp.Status)
	})

	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("rejects an unknown token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO(), "forged-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("binding validation", func() {
		tests := []struct {
			name string
			mut  func(map[string]any)
		}{
			{"missing service id", testutil.Field("service_id", nil)},
			{"missing booking date", testutil.Field("booking_date", nil)},
			{"missing service mode", testutil.Field("service_mode", nil)},
			{"missing customer email", testutil.Field("customer_email", nil)},
			{"malformed customer email", testutil.Field("customer_email", "not-an-email")},
			{"missing customer phone", testutil.Field("customer_phone", nil)},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				body := testutil.DtoMap(s.T(), builder.NewBookingBuilder().BuildCreateRequestDTO(), tt.mut)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings", body, customerToken)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("unknown service", func() {
		s.bookingCommands.EXPECT().
			Create(gomock.Any(), s.actors.customer, gomock.Any()).
			Return(nil, errs.ErrServiceNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO(), customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Service not found")
	})

	s.Run("unknown coupon", func() {
		s.bookingCommands.EXPECT().
			Create(gomock.Any(), s.actors.customer, gomock.Any()).
			Return(nil, errs.ErrCouponNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			builder.NewBookingBuilder().BuildCreateRequestDTO(), customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Coupon not found")
	})

	s.Run("booking for someone else is forbidden", func() {
		s.bookingCommands.EXPECT().
			Create(gomock.Any(), s.actors.customer, gomock.Any()).
			Return(nil, errs.ErrUnauthorized)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			builder.NewBookingBuilder().WithCustomerEmail("other@example.com").BuildCreateRequestDTO(), customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("domain validation failure", func() {
		s.bookingCommands.EXPECT().
			Create(gomock.Any(), s.actors.customer, gomock.Any()).
			Return(nil, errs.Mark(booking.ErrLocationRequired, errs.ErrDomainValidation))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings",
			builder.NewBookingBuilder().WithLocation("").BuildCreateRequestDTO(), customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("returns the booking", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.bookingQueries.EXPECT().
			GetByID(gomock.Any(), s.actors.customer, view.ID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String(), nil, customerToken)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
	})

	s.Run("malformed booking id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("unknown booking", func() {
		id := uuid.New()
		s.bookingQueries.EXPECT().
			GetByID(gomock.Any(), s.actors.customer, id).
			Return(nil, errs.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("out-of-scope booking", func() {
		id := uuid.New()
		s.bookingQueries.EXPECT().
			GetByID(gomock.Any(), s.actors.decorator, id).
			Return(nil, errs.ErrUnauthorized)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, decoratorToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed to view")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("lists bookings visible to the caller", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().WithStatus("completed").BuildListItem(),
		}
		s.bookingQueries.EXPECT().
			ListForActor(gomock.Any(), s.actors.customer, false).
			Return(items, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil, customerToken)

		var resp []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("admin requests the audit view with cancelled bookings", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().WithStatus("cancelled").BuildListItem(),
		}
		s.bookingQueries.EXPECT().
			ListForActor(gomock.Any(), s.actors.admin, true).
			Return(items, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings?include_cancelled=true", nil, adminToken)

		var resp []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})
}

func (s *BookingHandlerTestSuite) TestSetStatus() {
	s.Run("decorator advances the lifecycle", func() {
		view := builder.NewBookingBuilder().
			WithStatus("planning_phase").
			WithDecorators("amy@example.com").
			BuildViewQuery()
		s.bookingCommands.EXPECT().
			SetStatus(gomock.Any(), s.actors.decorator, view.ID, "planning_phase").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/"+view.ID.String()+"/status",
			reqdto.SetStatusRequest{Status: "planning_phase"}, decoratorToken)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("planning_phase", resp.Status)
	})

	s.Run("skipping a step reports the offending pair", func() {
		id := uuid.New()
		s.bookingCommands.EXPECT().
			SetStatus(gomock.Any(), s.actors.decorator, id, "completed").
			Return(nil, &booking.InvalidTransitionError{From: booking.StatusPlanningPhase, To: booking.StatusCompleted})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/"+id.String()+"/status",
			reqdto.SetStatusRequest{Status: "completed"}, decoratorToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Invalid status transition")

		var resp struct {
			Details struct {
				From string `json:"from"`
				To   string `json:"to"`
			} `json:"details"`
		}
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("planning_phase", resp.Details.From)
		s.Equal("completed", resp.Details.To)
	})

	s.Run("concurrent modification", func() {
		id := uuid.New()
		s.bookingCommands.EXPECT().
			SetStatus(gomock.Any(), s.actors.decorator, id, "materials_prepared").
			Return(nil, errs.ErrBookingConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/"+id.String()+"/status",
			reqdto.SetStatusRequest{Status: "materials_prepared"}, decoratorToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "modified concurrently")
	})

	s.Run("status is required", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/"+uuid.NewString()+"/status",
			gin.H{}, decoratorToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unassigned decorator is rejected", func() {
		id := uuid.New()
		s.bookingCommands.EXPECT().
			SetStatus(gomock.Any(), s.actors.decorator, id, "planning_phase").
			Return(nil, errs.ErrUnauthorized)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/bookings/"+id.String()+"/status",
			reqdto.SetStatusRequest{Status: "planning_phase"}, decoratorToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed to change")
	})
}

func (s *BookingHandlerTestSuite) TestOverrideStatus() {
	s.Run("admin overrides backwards with a reason", func() {
		view := builder.NewBookingBuilder().
			WithStatus("assigned").
			WithDecorators("amy@example.com").
			BuildViewQuery()
		s.bookingCommands.EXPECT().
			OverrideStatus(gomock.Any(), s.actors.admin, view.ID, "assigned", "materials order fell through").
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/status/override",
			reqdto.OverrideStatusRequest{Status: "assigned", Reason: "materials order fell through"}, adminToken)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("assigned", resp.Status)
	})

	s.Run("non-admins are blocked by middleware", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+uuid.NewString()+"/status/override",
			reqdto.OverrideStatusRequest{Status: "assigned", Reason: "nope"}, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("reason is required", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+uuid.NewString()+"/status/override",
			gin.H{"status": "assigned"}, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("customer cancels a pending booking", func() {
		view := builder.NewBookingBuilder().WithStatus("cancelled").BuildViewQuery()
		s.bookingCommands.EXPECT().
			Cancel(gomock.Any(), s.actors.customer, view.ID).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+view.ID.String(), nil, customerToken)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cancelled", resp.Status)
	})

	s.Run("late cancellation is forbidden", func() {
		id := uuid.New()
		s.bookingCommands.EXPECT().
			Cancel(gomock.Any(), s.actors.customer, id).
			Return(nil, errs.ErrUnauthorized)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+id.String(), nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed to change")
	})
}

func (s *BookingHandlerTestSuite) TestAssignDecorators() {
	s.Run("admin assigns decorators", func() {
		view := builder.NewBookingBuilder().
			WithStatus("assigned").
			WithDecorators("amy@example.com", "zoe@example.com").
			BuildViewQuery()
		s.assignCommands.EXPECT().
			Assign(gomock.Any(), s.actors.admin, view.ID, []string{"amy@example.com", "zoe@example.com"}).
			Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+view.ID.String()+"/assign",
			reqdto.AssignDecoratorsRequest{DecoratorEmails: []string{"amy@example.com", "zoe@example.com"}}, adminToken)

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal([]string{"amy@example.com", "zoe@example.com"}, resp.AssignedDecorators)
	})

	s.Run("ineligible decorators are itemized", func() {
		id := uuid.New()
		s.assignCommands.EXPECT().
			Assign(gomock.Any(), s.actors.admin, id, []string{"ghost@example.com"}).
			Return(nil, &commands.IneligibleDecoratorError{Emails: []string{"ghost@example.com"}})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+id.String()+"/assign",
			reqdto.AssignDecoratorsRequest{DecoratorEmails: []string{"ghost@example.com"}}, adminToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "not eligible")

		var resp struct {
			Details []string `json:"details"`
		}
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal([]string{"ghost@example.com"}, resp.Details)
	})

	s.Run("non-admins are blocked by middleware", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+uuid.NewString()+"/assign",
			reqdto.AssignDecoratorsRequest{DecoratorEmails: []string{"amy@example.com"}}, decoratorToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("emails must be well formed", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/"+uuid.NewString()+"/assign",
			gin.H{"decorator_emails": []string{"not-an-email"}}, adminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestGetReceipt() {
	s.Run("paid booking has a receipt", func() {
		b := builder.NewBookingBuilder().WithStatus("completed").AsPaid()
		view := b.BuildViewQuery()
		receipt := &queries.ReceiptView{
			BookingRef:    view.BookingRef,
			CustomerEmail: view.CustomerEmail,
			ServiceName:   view.ServiceName,
			PriceFinal:    view.PriceFinal,
			AmountPaid:    view.PriceFinal,
			Currency:      "USD",
			TransactionID: *view.TransactionID,
		}
		s.bookingQueries.EXPECT().
			Receipt(gomock.Any(), s.actors.customer, view.ID).
			Return(receipt, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+view.ID.String()+"/receipt", nil, customerToken)

		var resp resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(view.PriceFinal, resp.AmountPaid)
		s.Equal("USD", resp.Currency)
	})

	s.Run("unpaid booking", func() {
		id := uuid.New()
		s.bookingQueries.EXPECT().
			Receipt(gomock.Any(), s.actors.customer, id).
			Return(nil, errs.ErrBookingUnpaid)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String()+"/receipt", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not paid")
	})
}
