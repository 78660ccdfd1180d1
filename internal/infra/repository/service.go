package repository

import (
	"context"

	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/pgconv"
	"decor-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ServiceRecord, error) {
	var rec commands.ServiceRecord
	err := r.db.QueryRow(ctx,
		`SELECT id, name, unit_cost, unit, active FROM services WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.UnitCost, &rec.Unit, &rec.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by id", err)
	}
	return &rec, nil
}
