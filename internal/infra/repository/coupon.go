package repository

import (
	"context"

	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/pgconv"
	"decor-market/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*commands.CouponRecord, error) {
	var (
		rec        commands.CouponRecord
		flatAmount pgtype.Int8
		percentOff pgtype.Float8
		validFrom  pgtype.Timestamptz
		validTo    pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, code, flat_amount, percent_off, valid_from, valid_to
		FROM coupons WHERE code = $1`,
		code,
	).Scan(&rec.ID, &rec.Code, &flatAmount, &percentOff, &validFrom, &validTo)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	rec.FlatAmount = pgconv.Int64PtrFromPgtype(flatAmount)
	rec.PercentOff = pgconv.Float64PtrFromPgtype(percentOff)
	rec.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	rec.ValidTo = pgconv.TimePtrFromPgtype(validTo)
	return &rec, nil
}
