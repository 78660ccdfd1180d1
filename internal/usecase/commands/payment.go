package commands

import (
	"context"
	"log/slog"
	"strings"

	"decor-market/internal/domain/booking"
	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentCommands interface {
	CreateCheckoutSession(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*CheckoutSession, error)
	Reconcile(ctx context.Context, sessionID string) (*queries.BookingView, error)
}

type paymentCommandsImpl struct {
	bookingRepo    BookingRepository
	paymentRepo    PaymentRepository
	gateway        PaymentGateway
	uow            UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	currency       string
}

func NewPaymentCommands(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	gateway PaymentGateway,
	uow UnitOfWork,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
	currency string,
) PaymentCommands {
	return &paymentCommandsImpl{
		bookingRepo:    bookingRepo,
		paymentRepo:    paymentRepo,
		gateway:        gateway,
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
		currency:       currency,
	}
}

func (c *paymentCommandsImpl) CreateCheckoutSession(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*CheckoutSession, error) {
	entity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !actor.IsAdmin() && !strings.EqualFold(entity.Customer().Email(), actor.Email) {
		return nil, errs.ErrUnauthorized
	}
	if entity.Status() == booking.StatusCancelled {
		return nil, errs.ErrBookingCancelled
	}
	if entity.IsPaid() {
		return nil, errs.Mark(booking.ErrAlreadyPaid, errs.ErrDomainValidation)
	}

	session, err := c.gateway.CreateSession(ctx, CreateSessionRequest{
		BookingID:  entity.ID(),
		BookingRef: entity.BookingRef(),
		Amount:     entity.Pricing().Final,
		Currency:   c.currency,
	})
	if err != nil {
		return nil, errs.Wrap(err, "create checkout session")
	}

	slog.Info("checkout session created",
		"booking_id", bookingID,
		"session_id", session.ID,
		"amount", entity.Pricing().Final)

	return session, nil
}

// Reconcile correlates an external payment confirmation with its booking.
// Idempotent per session id: a confirmation that was already applied returns
// the current booking unchanged.
func (c *paymentCommandsImpl) Reconcile(ctx context.Context, sessionID string) (*queries.BookingView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errs.ErrSessionNotFound
	}

	// Replayed confirmation (redirect + webhook race): no-op success.
	if existing, err := c.paymentRepo.FindBySessionID(ctx, sessionID); err == nil {
		return c.bookingQueries.GetByIDSystem(ctx, existing.BookingID)
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	status, err := c.gateway.FetchSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !status.Captured {
		return nil, errs.ErrPaymentNotCaptured
	}

	bookingID, err := c.resolveBookingID(ctx, status)
	if err != nil {
		return nil, err
	}

	paymentID := uuid.New()
	paidAt := status.PaidAt
	if paidAt.IsZero() {
		paidAt = c.clock.Now()
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		entity, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if entity.Status() == booking.StatusCancelled {
			return errs.ErrBookingCancelled
		}
		if entity.IsPaid() {
			// Another confirmation path won the race for this booking.
			return nil
		}

		if err := entity.MarkPaid(paymentID, status.TransactionID); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Payments().Create(ctx, &PaymentRecord{
			ID:            paymentID,
			BookingID:     entity.ID(),
			SessionID:     sessionID,
			Amount:        status.Amount,
			Currency:      status.Currency,
			TransactionID: status.TransactionID,
			PaidAt:        paidAt,
		}); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payment reconciled",
		"booking_id", bookingID,
		"session_id", sessionID,
		"transaction_id", status.TransactionID)

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

// resolveBookingID falls back to the booking reference the gateway reports
// when the local session index has lost the mapping, so a captured charge can
// always be applied.
func (c *paymentCommandsImpl) resolveBookingID(ctx context.Context, status *CheckoutSessionStatus) (uuid.UUID, error) {
	if status.BookingID != uuid.Nil {
		return status.BookingID, nil
	}

	entity, err := c.bookingRepo.FindByRef(ctx, status.BookingRef)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrSessionNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Warn("checkout session index miss, resolved booking by reference",
		"session_id", status.SessionID,
		"booking_ref", status.BookingRef,
		"booking_id", entity.ID())

	return entity.ID(), nil
}
