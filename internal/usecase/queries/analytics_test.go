//go:build unit

package queries_test

import (
	"context"
	"testing"

	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"
	"decor-market/tests/common/builder"
	queriesmock "decor-market/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsQueries_Revenue(t *testing.T) {
	t.Run("admin reads revenue aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAnalyticsReadStore(ctrl)
		store.EXPECT().Revenue(gomock.Any()).
			Return(&queries.RevenueView{CompletedBookings: 7, PaidBookings: 9, TotalRevenue: 41500}, nil)

		view, err := queries.NewAnalyticsQueries(store).Revenue(context.Background(), builder.AdminActor())
		require.NoError(t, err)
		assert.Equal(t, int64(41500), view.TotalRevenue)
		assert.Equal(t, int64(7), view.CompletedBookings)
	})

	t.Run("only admins may read analytics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAnalyticsReadStore(ctrl)

		_, err := queries.NewAnalyticsQueries(store).Revenue(context.Background(), builder.CustomerActor("customer@example.com"))
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
