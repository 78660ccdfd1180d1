package queries

import (
	"context"

	"decor-market/internal/pkg/errs"
)

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
}

type catalogQueriesImpl struct {
	services ServiceReadStore
}

func NewCatalogQueries(services ServiceReadStore) CatalogQueries {
	return &catalogQueriesImpl{services: services}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	views, err := q.services.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
