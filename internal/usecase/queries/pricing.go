package queries

import (
	"context"
	"strings"

	"decor-market/internal/domain/booking"
	"decor-market/internal/domain/coupon"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type PricingQueries interface {
	// Quote computes the same breakdown booking creation would freeze,
	// without creating anything. Unknown or inactive services fail; an
	// unknown coupon code fails rather than silently quoting full price.
	Quote(ctx context.Context, serviceID uuid.UUID, couponCode *string) (*PricingQuoteView, error)
}

type pricingQueriesImpl struct {
	services ServiceReadStore
	coupons  CouponReadStore
	clock    clock.Clock
}

func NewPricingQueries(services ServiceReadStore, coupons CouponReadStore, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{
		services: services,
		coupons:  coupons,
		clock:    clk,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, serviceID uuid.UUID, couponCode *string) (*PricingQuoteView, error) {
	svc, err := q.services.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.Active {
		return nil, errs.ErrServiceNotFound
	}

	var cpn *coupon.Coupon
	if couponCode != nil && strings.TrimSpace(*couponCode) != "" {
		cpn, err = q.resolveCoupon(ctx, *couponCode)
		if err != nil {
			return nil, err
		}
	}

	pricing := booking.ComputePrice(svc.UnitCost, cpn)
	return &PricingQuoteView{
		ServiceID:      svc.ID,
		Original:       pricing.Original,
		DiscountCode:   pricing.DiscountCode,
		DiscountAmount: pricing.DiscountAmount,
		Final:          pricing.Final,
	}, nil
}

func (q *pricingQueriesImpl) resolveCoupon(ctx context.Context, code string) (*coupon.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	view, err := q.coupons.FindByCode(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	cpn, err := coupon.NewCoupon(view.ID, view.Code, view.FlatAmount, view.PercentOff, view.ValidFrom, view.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := cpn.ValidateUsage(q.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrCouponNotFound)
	}
	return cpn, nil
}
