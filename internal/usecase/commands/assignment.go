package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"decor-market/internal/domain/booking"
	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

// IneligibleDecoratorError names every offending email so the caller can fix
// the whole set at once; assignment is all-or-nothing.
type IneligibleDecoratorError struct {
	Emails []string
}

func (e *IneligibleDecoratorError) Error() string {
	return fmt.Sprintf("ineligible decorators: %s", strings.Join(e.Emails, ", "))
}

func (e *IneligibleDecoratorError) Unwrap() error {
	return errs.ErrIneligibleDecorator
}

type AssignmentCommands interface {
	Assign(ctx context.Context, actor user.Actor, bookingID uuid.UUID, decoratorEmails []string) (*queries.BookingView, error)
}

type assignmentCommandsImpl struct {
	bookingRepo    BookingRepository
	directory      DecoratorDirectory
	bookingQueries queries.BookingQueries
}

func NewAssignmentCommands(
	bookingRepo BookingRepository,
	directory DecoratorDirectory,
	bookingQueries queries.BookingQueries,
) AssignmentCommands {
	return &assignmentCommandsImpl{
		bookingRepo:    bookingRepo,
		directory:      directory,
		bookingQueries: bookingQueries,
	}
}

func (c *assignmentCommandsImpl) Assign(ctx context.Context, actor user.Actor, bookingID uuid.UUID, decoratorEmails []string) (*queries.BookingView, error) {
	if !actor.IsAdmin() {
		return nil, errs.ErrUnauthorized
	}

	emails := booking.NormalizeDecorators(decoratorEmails)
	if len(emails) == 0 {
		return nil, errs.Mark(booking.ErrNoDecorators, errs.ErrDomainValidation)
	}

	if err := c.checkEligibility(ctx, emails); err != nil {
		return nil, err
	}

	entity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.AssignDecorators(emails); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	if err := c.bookingRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrBookingConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("decorators assigned",
		"booking_id", bookingID,
		"decorators", emails,
		"admin", actor.Email)

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

// checkEligibility fails atomically when any requested email does not resolve
// to an active decorator; no partial assignment is possible.
func (c *assignmentCommandsImpl) checkEligibility(ctx context.Context, emails []string) error {
	found, err := c.directory.FindByEmails(ctx, emails)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	eligible := make(map[string]bool, len(found))
	for _, d := range found {
		if d.IsEligibleForAssignment() {
			eligible[d.Email().String()] = true
		}
	}

	var offending []string
	for _, e := range emails {
		if !eligible[e] {
			offending = append(offending, e)
		}
	}
	if len(offending) > 0 {
		return &IneligibleDecoratorError{Emails: offending}
	}
	return nil
}
