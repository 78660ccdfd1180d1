package queries

import (
	"context"
	"strings"

	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type BookingQueries interface {
	// GetByID enforces actor scope: customers see their own bookings,
	// decorators the ones assigned to them, admins everything.
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses actor scope for read-after-write inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListForActor returns the caller's schedule view; cancelled bookings are
	// excluded. Admins may pass includeCancelled for the audit view.
	ListForActor(ctx context.Context, actor user.Actor, includeCancelled bool) ([]*BookingListItem, error)
	Receipt(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReceiptView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	payments PaymentReadStore
}

func NewBookingQueries(bookings BookingReadStore, payments PaymentReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		payments: payments,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeRead(actor, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForActor(ctx context.Context, actor user.Actor, includeCancelled bool) ([]*BookingListItem, error) {
	switch {
	case actor.IsAdmin():
		return q.bookings.ListAll(ctx, includeCancelled)
	case actor.IsDecorator():
		return q.bookings.ListByDecoratorEmail(ctx, strings.ToLower(actor.Email))
	default:
		return q.bookings.ListByCustomerEmail(ctx, strings.ToLower(actor.Email))
	}
}

// Receipt is a pure projection over a paid booking: service snapshot,
// frozen pricing and the reconciled payment fields.
func (q *bookingQueriesImpl) Receipt(ctx context.Context, actor user.Actor, id uuid.UUID) (*ReceiptView, error) {
	var (
		view    *BookingView
		payment *PaymentView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := q.GetByIDSystem(gctx, id)
		if err != nil {
			return err
		}
		view = v
		return nil
	})
	g.Go(func() error {
		p, err := q.payments.FindByBookingID(gctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingUnpaid
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		payment = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := authorizeRead(actor, view); err != nil {
		return nil, err
	}
	if view.PaymentID == nil {
		return nil, errs.ErrBookingUnpaid
	}

	return &ReceiptView{
		BookingRef:     view.BookingRef,
		CustomerEmail:  view.CustomerEmail,
		ServiceName:    view.ServiceName,
		ServiceUnit:    view.ServiceUnit,
		BookingDate:    view.BookingDate,
		PriceOriginal:  view.PriceOriginal,
		DiscountCode:   view.DiscountCode,
		DiscountAmount: view.DiscountAmount,
		PriceFinal:     view.PriceFinal,
		AmountPaid:     payment.Amount,
		Currency:       payment.Currency,
		TransactionID:  payment.TransactionID,
		PaidAt:         payment.PaidAt,
	}, nil
}

func authorizeRead(actor user.Actor, view *BookingView) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsDecorator():
		email := strings.ToLower(actor.Email)
		for _, d := range view.AssignedDecorators {
			if d == email {
				return nil
			}
		}
		return errs.ErrUnauthorized
	default:
		if strings.EqualFold(view.CustomerEmail, actor.Email) {
			return nil
		}
		return errs.ErrUnauthorized
	}
}
