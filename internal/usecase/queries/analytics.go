package queries

import (
	"context"

	"decor-market/internal/domain/user"
	"decor-market/internal/pkg/errs"
)

type AnalyticsQueries interface {
	Revenue(ctx context.Context, actor user.Actor) (*RevenueView, error)
}

type analyticsQueriesImpl struct {
	analytics AnalyticsReadStore
}

func NewAnalyticsQueries(analytics AnalyticsReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{analytics: analytics}
}

func (q *analyticsQueriesImpl) Revenue(ctx context.Context, actor user.Actor) (*RevenueView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}
	view, err := q.analytics.Revenue(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
