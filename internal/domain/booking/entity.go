package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNoDecorators       = errors.New("at least one decorator is required")
	ErrBookingCancelled   = errors.New("booking is cancelled")
	ErrBookingTerminal    = errors.New("booking is in a terminal state")
	ErrAlreadyPaid        = errors.New("booking is already paid")
	ErrCustomerCancelLate = errors.New("customer can only cancel before fulfillment starts")
)

// InvalidTransitionError names the offending (from, to) pair so callers can
// surface the allowed next states instead of silently coercing.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Booking is the aggregate root of the fulfillment workflow. Status moves
// only forward or to cancelled; pricing is frozen at creation; payment fields
// are set at most once by reconciliation.
type Booking struct {
	id                 uuid.UUID
	bookingRef         string
	customer           CustomerContact
	service            ServiceSnapshot
	bookingDate        time.Time
	serviceMode        ServiceMode
	location           string
	pricing            Pricing
	status             Status
	assignedDecorators []string
	paymentID          *uuid.UUID
	transactionID      *string
	version            int32
	createdAt          time.Time
	updatedAt          time.Time
}

func ReconstructBooking(
	id uuid.UUID,
	bookingRef string,
	customer CustomerContact,
	service ServiceSnapshot,
	bookingDate time.Time,
	serviceMode ServiceMode,
	location string,
	pricing Pricing,
	status Status,
	assignedDecorators []string,
	paymentID *uuid.UUID,
	transactionID *string,
	version int32,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		bookingRef:         bookingRef,
		customer:           customer,
		service:            service,
		bookingDate:        bookingDate,
		serviceMode:        serviceMode,
		location:           location,
		pricing:            pricing,
		status:             status,
		assignedDecorators: NormalizeDecorators(assignedDecorators),
		paymentID:          paymentID,
		transactionID:      transactionID,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// TransitionTo applies a normal lifecycle transition. Entering assigned is
// only licensed when at least one decorator is attached.
func (b *Booking) TransitionTo(to Status) error {
	if !b.status.CanTransitionTo(to) {
		return &InvalidTransitionError{From: b.status, To: to}
	}
	if to == StatusAssigned && len(b.assignedDecorators) == 0 {
		return ErrNoDecorators
	}
	b.status = to
	return nil
}

// ForceStatus is the audited admin exception path: it may move the booking to
// any non-identical valid state, including backward, but never out of a
// terminal state. Callers must log the override.
func (b *Booking) ForceStatus(to Status) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}
	if !to.IsValid() || to == b.status {
		return &InvalidTransitionError{From: b.status, To: to}
	}
	if to == StatusAssigned && len(b.assignedDecorators) == 0 {
		return ErrNoDecorators
	}
	b.status = to
	return nil
}

// AssignDecorators replaces (never merges) the assigned set. A pending
// booking advances to assigned as part of the same change.
func (b *Booking) AssignDecorators(emails []string) error {
	if b.status.IsTerminal() {
		return ErrBookingTerminal
	}

	normalized := NormalizeDecorators(emails)
	if len(normalized) == 0 {
		return ErrNoDecorators
	}

	b.assignedDecorators = normalized
	if b.status == StatusPending {
		b.status = StatusAssigned
	}
	return nil
}

// MarkPaid records a successful reconciliation. Repeating the same payment id
// is a no-op so duplicate confirmation callbacks stay harmless.
func (b *Booking) MarkPaid(paymentID uuid.UUID, transactionID string) error {
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	if b.paymentID != nil {
		if *b.paymentID == paymentID {
			return nil
		}
		return ErrAlreadyPaid
	}

	id := paymentID
	tx := transactionID
	b.paymentID = &id
	b.transactionID = &tx
	return nil
}

func (b *Booking) IsPaid() bool {
	return b.paymentID != nil
}

// IsAssignedTo reports whether the given decorator email is on the booking.
func (b *Booking) IsAssignedTo(email string) bool {
	for _, e := range b.assignedDecorators {
		if e == email {
			return true
		}
	}
	return false
}

// CustomerMayCancel limits customer-initiated cancellation to the phases
// before on-site fulfillment work has begun.
func (b *Booking) CustomerMayCancel() bool {
	return b.status == StatusPending || b.status == StatusAssigned
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) BookingRef() string           { return b.bookingRef }
func (b *Booking) Customer() CustomerContact    { return b.customer }
func (b *Booking) Service() ServiceSnapshot     { return b.service }
func (b *Booking) BookingDate() time.Time       { return b.bookingDate }
func (b *Booking) ServiceMode() ServiceMode     { return b.serviceMode }
func (b *Booking) Location() string             { return b.location }
func (b *Booking) Pricing() Pricing             { return b.pricing }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) AssignedDecorators() []string { return b.assignedDecorators }
func (b *Booking) PaymentID() *uuid.UUID        { return b.paymentID }
func (b *Booking) TransactionID() *string       { return b.transactionID }
func (b *Booking) Version() int32               { return b.version }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
