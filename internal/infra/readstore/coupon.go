package readstore

import (
	"context"

	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/pgconv"
	"decor-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	var (
		v          queries.CouponView
		flatAmount pgtype.Int8
		percentOff pgtype.Float8
		validFrom  pgtype.Timestamptz
		validTo    pgtype.Timestamptz
	)

	err := s.db.QueryRow(ctx, `
		SELECT id, code, flat_amount, percent_off, valid_from, valid_to
		FROM coupons WHERE code = $1`,
		code,
	).Scan(&v.ID, &v.Code, &flatAmount, &percentOff, &validFrom, &validTo)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon view", err)
	}

	v.FlatAmount = pgconv.Int64PtrFromPgtype(flatAmount)
	v.PercentOff = pgconv.Float64PtrFromPgtype(percentOff)
	v.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	v.ValidTo = pgconv.TimePtrFromPgtype(validTo)
	return &v, nil
}
