package readstore

import (
	"context"

	"decor-market/internal/domain/booking"
	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/usecase/queries"
)

type AnalyticsReadStore struct {
	db db.DBTX
}

func NewAnalyticsReadStore(dbtx db.DBTX) *AnalyticsReadStore {
	return &AnalyticsReadStore{db: dbtx}
}

// Revenue counts only money actually captured. A paid booking that was later
// force-cancelled drops out of the paid totals.
func (s *AnalyticsReadStore) Revenue(ctx context.Context) (*queries.RevenueView, error) {
	var v queries.RevenueView
	err := s.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE payment_id IS NOT NULL AND status <> $2),
			COALESCE(SUM(price_final) FILTER (WHERE payment_id IS NOT NULL AND status <> $2), 0)
		FROM bookings`,
		string(booking.StatusCompleted), string(booking.StatusCancelled),
	).Scan(&v.CompletedBookings, &v.PaidBookings, &v.TotalRevenue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate revenue", err)
	}
	return &v, nil
}
