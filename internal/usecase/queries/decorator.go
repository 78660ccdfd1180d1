package queries

import (
	"context"
	"strings"

	"decor-market/internal/domain/decorator"
	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/errs"
)

type DecoratorQueries interface {
	List(ctx context.Context, actor user.Actor, status *string) ([]*DecoratorView, error)
	// Earnings aggregates completed bookings for one decorator. Decorators
	// may only look at their own numbers.
	Earnings(ctx context.Context, actor user.Actor, email string) (*EarningsView, error)
}

type decoratorQueriesImpl struct {
	decorators DecoratorReadStore
}

func NewDecoratorQueries(decorators DecoratorReadStore) DecoratorQueries {
	return &decoratorQueriesImpl{decorators: decorators}
}

func (q *decoratorQueriesImpl) List(ctx context.Context, actor user.Actor, status *string) ([]*DecoratorView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}
	if status != nil {
		if _, err := decorator.ParseStatus(*status); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	views, err := q.decorators.List(ctx, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *decoratorQueriesImpl) Earnings(ctx context.Context, actor user.Actor, email string) (*EarningsView, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !actor.IsAdmin() && !strings.EqualFold(actor.Email, email) {
		return nil, errs.ErrUnauthorized
	}
	view, err := q.decorators.Earnings(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDecoratorNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
