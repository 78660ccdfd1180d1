package readstore

import (
	"context"

	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/pgconv"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (s *ServiceReadStore) ListActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, unit_cost, unit, active
		FROM services WHERE active ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.Name, &v.UnitCost, &v.Unit, &v.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return views, nil
}

func (s *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := s.db.QueryRow(ctx,
		`SELECT id, name, unit_cost, unit, active FROM services WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Name, &v.UnitCost, &v.Unit, &v.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service view", err)
	}
	return &v, nil
}
