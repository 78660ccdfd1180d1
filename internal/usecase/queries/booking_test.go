//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"decor-market/internal/infra"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"
	"decor-market/tests/common/builder"
	queriesmock "decor-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	bookings *queriesmock.MockBookingReadStore
	payments *queriesmock.MockPaymentReadStore
	queries  queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.payments = queriesmock.NewMockPaymentReadStore(s.ctrl)
	s.queries = queries.NewBookingQueries(s.bookings, s.payments)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	s.Run("customer reads their own booking", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.GetByID(context.Background(), builder.CustomerActor("customer@example.com"), view.ID)
		s.NoError(err)
		s.Equal(view.BookingRef, got.BookingRef)
	})

	s.Run("customer email match ignores case", func() {
		view := builder.NewBookingBuilder().WithCustomerEmail("customer@example.com").BuildViewQuery()
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(context.Background(), builder.CustomerActor("Customer@Example.COM"), view.ID)
		s.NoError(err)
	})

	s.Run("customer cannot read a stranger's booking", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(context.Background(), builder.CustomerActor("other@example.com"), view.ID)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("assigned decorator reads the booking", func() {
		view := builder.NewBookingBuilder().
			WithStatus("assigned").
			WithDecorators("amy@example.com", "zoe@example.com").
			BuildViewQuery()
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(context.Background(), builder.DecoratorActor("Amy@Example.com"), view.ID)
		s.NoError(err)
	})

	s.Run("unassigned decorator is rejected", func() {
		view := builder.NewBookingBuilder().
			WithStatus("assigned").
			WithDecorators("amy@example.com").
			BuildViewQuery()
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(context.Background(), builder.DecoratorActor("zoe@example.com"), view.ID)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("admin reads any booking", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(context.Background(), builder.AdminActor(), view.ID)
		s.NoError(err)
	})

	s.Run("unknown booking", func() {
		id := uuid.New()
		s.bookings.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.queries.GetByID(context.Background(), builder.AdminActor(), id)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListForActor() {
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().WithStatus("completed").BuildListItem(),
	}

	s.Run("admin lists the active schedule by default", func() {
		s.bookings.EXPECT().ListAll(gomock.Any(), false).Return(items, nil)

		got, err := s.queries.ListForActor(context.Background(), builder.AdminActor(), false)
		s.NoError(err)
		s.Len(got, 2)
	})

	s.Run("admin opts into the audit view with cancelled bookings", func() {
		cancelled := append(items, builder.NewBookingBuilder().WithStatus("cancelled").BuildListItem())
		s.bookings.EXPECT().ListAll(gomock.Any(), true).Return(cancelled, nil)

		got, err := s.queries.ListForActor(context.Background(), builder.AdminActor(), true)
		s.NoError(err)
		s.Len(got, 3)
	})

	s.Run("decorator lists assignments by lowercased email", func() {
		s.bookings.EXPECT().ListByDecoratorEmail(gomock.Any(), "amy@example.com").Return(items[:1], nil)

		got, err := s.queries.ListForActor(context.Background(), builder.DecoratorActor("Amy@Example.com"), false)
		s.NoError(err)
		s.Len(got, 1)
	})

	s.Run("decorator cannot opt into the audit view", func() {
		s.bookings.EXPECT().ListByDecoratorEmail(gomock.Any(), "amy@example.com").Return(items[:1], nil)

		got, err := s.queries.ListForActor(context.Background(), builder.DecoratorActor("amy@example.com"), true)
		s.NoError(err)
		s.Len(got, 1)
	})

	s.Run("customer lists their own bookings by lowercased email", func() {
		s.bookings.EXPECT().ListByCustomerEmail(gomock.Any(), "customer@example.com").Return(items, nil)

		got, err := s.queries.ListForActor(context.Background(), builder.CustomerActor("Customer@example.com"), false)
		s.NoError(err)
		s.Len(got, 2)
	})
}

func (s *BookingQueriesTestSuite) TestReceipt() {
	s.Run("paid booking yields a receipt", func() {
		view := builder.NewBookingBuilder().WithStatus("completed").AsPaid().BuildViewQuery()
		payment := &queries.PaymentView{
			ID:            *view.PaymentID,
			BookingID:     view.ID,
			SessionID:     "cs_test_123",
			Amount:        view.PriceFinal,
			Currency:      "USD",
			TransactionID: *view.TransactionID,
			PaidAt:        testTime,
		}
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.payments.EXPECT().FindByBookingID(gomock.Any(), view.ID).Return(payment, nil)

		receipt, err := s.queries.Receipt(context.Background(), builder.CustomerActor("customer@example.com"), view.ID)
		s.Require().NoError(err)
		s.Equal(view.BookingRef, receipt.BookingRef)
		s.Equal(view.PriceFinal, receipt.AmountPaid)
		s.Equal("USD", receipt.Currency)
		s.Equal(*view.TransactionID, receipt.TransactionID)
		s.Equal(testTime, receipt.PaidAt)
	})

	s.Run("unpaid booking has no receipt", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).AnyTimes()
		s.payments.EXPECT().FindByBookingID(gomock.Any(), view.ID).Return(nil, notFoundErr())

		_, err := s.queries.Receipt(context.Background(), builder.CustomerActor("customer@example.com"), view.ID)
		s.ErrorIs(err, errs.ErrBookingUnpaid)
	})

	s.Run("stranger cannot pull a receipt", func() {
		view := builder.NewBookingBuilder().WithStatus("completed").AsPaid().BuildViewQuery()
		payment := &queries.PaymentView{ID: *view.PaymentID, BookingID: view.ID, Amount: view.PriceFinal}
		s.bookings.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.payments.EXPECT().FindByBookingID(gomock.Any(), view.ID).Return(payment, nil)

		_, err := s.queries.Receipt(context.Background(), builder.CustomerActor("other@example.com"), view.ID)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})
}
