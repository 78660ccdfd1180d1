package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"decor-market/internal/domain/booking"
	"decor-market/internal/domain/coupon"
	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ServiceID     uuid.UUID
	BookingDate   time.Time
	ServiceMode   string
	Location      string
	CustomerEmail string
	CustomerPhone string
	CouponCode    *string
}

type BookingCommands interface {
	Create(ctx context.Context, actor user.Actor, input CreateBookingInput) (*queries.BookingView, error)
	SetStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, status string) (*queries.BookingView, error)
	OverrideStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, status, reason string) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	serviceReader  ServiceReader
	couponReader   CouponReader
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	serviceReader ServiceReader,
	couponReader CouponReader,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		serviceReader:  serviceReader,
		couponReader:   couponReader,
		factory:        factory,
		bookingQueries: bookingQueries,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, actor user.Actor, input CreateBookingInput) (*queries.BookingView, error) {
	// Customers book for themselves; admins may book on a customer's behalf.
	switch {
	case actor.IsAdmin():
	case actor.IsCustomer():
		if !strings.EqualFold(input.CustomerEmail, actor.Email) {
			return nil, errs.ErrUnauthorized
		}
	default:
		return nil, errs.ErrUnauthorized
	}

	contact, err := booking.NewCustomerContact(input.CustomerEmail, input.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	mode, err := booking.ParseServiceMode(input.ServiceMode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snapshot, err := c.resolveServiceSnapshot(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	coup, err := c.resolveCoupon(ctx, input.CouponCode)
	if err != nil {
		return nil, err
	}

	entity, err := c.factory.CreateBooking(contact, snapshot, input.BookingDate, mode, input.Location, coup)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.bookingQueries.GetByIDSystem(ctx, entity.ID())
}

func (c *bookingCommandsImpl) SetStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, status string) (*queries.BookingView, error) {
	entity, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Actor scope is checked before any status validation; an out-of-scope
	// caller learns nothing from the payload they sent.
	if err := authorizeActorScope(actor, entity); err != nil {
		return nil, err
	}

	target, err := booking.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := authorizeStatusTarget(actor, entity, target); err != nil {
		return nil, err
	}

	if err := entity.TransitionTo(target); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	if target == booking.StatusCancelled {
		// Any in-flight checkout session for this booking is void from here
		// on; reconciliation rejects cancelled bookings.
		slog.Info("booking cancelled, outstanding payment intents voided",
			"booking_id", bookingID, "actor", actor.Email, "role", actor.Role.String())
	}

	if err := c.persist(ctx, entity); err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) OverrideStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, status, reason string) (*queries.BookingView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}
	if strings.TrimSpace(reason) == "" {
		return nil, errs.Mark(errs.New("override reason is required"), errs.ErrDomainValidation)
	}

	target, err := booking.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := c.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	from := entity.Status()
	if err := entity.ForceStatus(target); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	// Exception path, not a normal transition: always audited.
	slog.Warn("admin status override",
		"booking_id", bookingID,
		"from", from.String(),
		"to", target.String(),
		"reason", reason,
		"admin", actor.Email)

	if err := c.persist(ctx, entity); err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	return c.SetStatus(ctx, actor, bookingID, booking.StatusCancelled.String())
}

func (c *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	entity, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) persist(ctx context.Context, entity *booking.Booking) error {
	if err := c.bookingRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.ErrBookingConflict
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookingCommandsImpl) resolveServiceSnapshot(ctx context.Context, serviceID uuid.UUID) (booking.ServiceSnapshot, error) {
	svc, err := c.serviceReader.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ServiceSnapshot{}, errs.ErrServiceNotFound
		}
		return booking.ServiceSnapshot{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.Active {
		return booking.ServiceSnapshot{}, errs.ErrServiceNotFound
	}

	return booking.ServiceSnapshot{
		ServiceID: svc.ID,
		Name:      svc.Name,
		UnitCost:  svc.UnitCost,
		Unit:      svc.Unit,
	}, nil
}

func (c *bookingCommandsImpl) resolveCoupon(ctx context.Context, code *string) (*coupon.Coupon, error) {
	if code == nil || strings.TrimSpace(*code) == "" {
		return nil, nil
	}

	normalized, err := coupon.NewCode(*code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponNotFound)
	}

	record, err := c.couponReader.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := coupon.NewCoupon(record.ID, record.Code, record.FlatAmount, record.PercentOff, record.ValidFrom, record.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponNotFound)
	}
	return entity, nil
}

// authorizeActorScope decides whether the actor may touch the booking at all:
// admins reach every booking, decorators only bookings assigned to them,
// customers only their own.
func authorizeActorScope(actor user.Actor, entity *booking.Booking) error {
	switch {
	case actor.IsAdmin():
		return nil

	case actor.IsDecorator():
		if !entity.IsAssignedTo(strings.ToLower(actor.Email)) {
			return errs.ErrUnauthorized
		}
		return nil

	case actor.IsCustomer():
		if !strings.EqualFold(entity.Customer().Email(), actor.Email) {
			return errs.ErrUnauthorized
		}
		return nil

	default:
		return errs.ErrUnauthorized
	}
}

// authorizeStatusTarget enforces which moves an in-scope actor may make:
// a decorator advances along the forward chain only, a customer may only
// cancel and only before fulfillment has progressed past assignment.
func authorizeStatusTarget(actor user.Actor, entity *booking.Booking, target booking.Status) error {
	switch {
	case actor.IsAdmin():
		return nil

	case actor.IsDecorator():
		if target == booking.StatusCancelled {
			return errs.ErrUnauthorized
		}
		return nil

	case actor.IsCustomer():
		if target != booking.StatusCancelled {
			return errs.ErrUnauthorized
		}
		if !entity.CustomerMayCancel() {
			return errs.Mark(booking.ErrCustomerCancelLate, errs.ErrUnauthorized)
		}
		return nil

	default:
		return errs.ErrUnauthorized
	}
}
