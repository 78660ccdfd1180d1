//go:build unit

package queries_test

import (
	"context"
	"testing"

	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"
	"decor-market/tests/common/builder"
	queriesmock "decor-market/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DecoratorQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	decorators *queriesmock.MockDecoratorReadStore
	queries    queries.DecoratorQueries
}

func (s *DecoratorQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.decorators = queriesmock.NewMockDecoratorReadStore(s.ctrl)
	s.queries = queries.NewDecoratorQueries(s.decorators)
}

func (s *DecoratorQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDecoratorQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(DecoratorQueriesTestSuite))
}

func (s *DecoratorQueriesTestSuite) TestList() {
	s.Run("admin lists all decorators", func() {
		views := []*queries.DecoratorView{
			builder.NewDecoratorBuilder().BuildViewQuery(),
			builder.NewDecoratorBuilder().WithEmail("amy@example.com").AsPending().BuildViewQuery(),
		}
		s.decorators.EXPECT().List(gomock.Any(), nil).Return(views, nil)

		got, err := s.queries.List(context.Background(), builder.AdminActor(), nil)
		s.NoError(err)
		s.Len(got, 2)
	})

	s.Run("admin filters by status", func() {
		status := "pending"
		s.decorators.EXPECT().List(gomock.Any(), &status).
			Return([]*queries.DecoratorView{builder.NewDecoratorBuilder().AsPending().BuildViewQuery()}, nil)

		got, err := s.queries.List(context.Background(), builder.AdminActor(), &status)
		s.NoError(err)
		s.Len(got, 1)
	})

	s.Run("unknown status filter", func() {
		status := "sleeping"
		_, err := s.queries.List(context.Background(), builder.AdminActor(), &status)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("only admins may list", func() {
		_, err := s.queries.List(context.Background(), builder.DecoratorActor("amy@example.com"), nil)
		s.ErrorIs(err, errs.ErrUnauthorized)
	})
}

func (s *DecoratorQueriesTestSuite) TestEarnings() {
	earnings := &queries.EarningsView{
		DecoratorEmail:    "amy@example.com",
		CompletedBookings: 3,
		TotalEarned:       12500,
	}

	s.Run("decorator reads their own earnings", func() {
		s.decorators.EXPECT().Earnings(gomock.Any(), "amy@example.com").Return(earnings, nil)

		got, err := s.queries.Earnings(context.Background(), builder.DecoratorActor("Amy@Example.com"), " Amy@example.com ")
		s.Require().NoError(err)
		s.Equal(int64(3), got.CompletedBookings)
		s.Equal(int64(12500), got.TotalEarned)
	})

	s.Run("admin reads anyone's earnings", func() {
		s.decorators.EXPECT().Earnings(gomock.Any(), "amy@example.com").Return(earnings, nil)

		_, err := s.queries.Earnings(context.Background(), builder.AdminActor(), "amy@example.com")
		s.NoError(err)
	})

	s.Run("decorator cannot read a colleague's earnings", func() {
		_, err := s.queries.Earnings(context.Background(), builder.DecoratorActor("zoe@example.com"), "amy@example.com")
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("unknown decorator", func() {
		s.decorators.EXPECT().Earnings(gomock.Any(), "ghost@example.com").Return(nil, notFoundErr())

		_, err := s.queries.Earnings(context.Background(), builder.AdminActor(), "ghost@example.com")
		s.ErrorIs(err, errs.ErrDecoratorNotFound)
	})
}
