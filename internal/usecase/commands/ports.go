package commands

import (
	"context"
	"time"

	"decor-market/internal/domain/booking"
	"decor-market/internal/domain/decorator"
	"decor-market/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side records keep the command layer off the read-side query types.

type ServiceRecord struct {
	ID       uuid.UUID
	Name     string
	UnitCost int64
	Unit     string
	Active   bool
}

type CouponRecord struct {
	ID         uuid.UUID
	Code       string
	FlatAmount *int64
	PercentOff *float64
	ValidFrom  *time.Time
	ValidTo    *time.Time
}

type PaymentRecord struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	SessionID     string
	Amount        int64
	Currency      string
	TransactionID string
	PaidAt        time.Time
}

// CheckoutSession is the redirect handle returned by the payment gateway.
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutSessionStatus is the gateway's view of a session; the gateway is
// the source of truth for whether the charge was captured. BookingID comes
// from the local session index and is uuid.Nil when that index no longer has
// the session; BookingRef is the reference the gateway echoes back and always
// identifies the booking.
type CheckoutSessionStatus struct {
	SessionID     string
	BookingID     uuid.UUID
	BookingRef    string
	Captured      bool
	TransactionID string
	Amount        int64
	Currency      string
	PaidAt        time.Time
}

type CreateSessionRequest struct {
	BookingID  uuid.UUID
	BookingRef string
	Amount     int64
	Currency   string
}

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceRecord, error)
}

type CouponReader interface {
	FindByCode(ctx context.Context, code string) (*CouponRecord, error)
}

// DecoratorDirectory is the read-shared eligibility source for assignment.
type DecoratorDirectory interface {
	FindByEmails(ctx context.Context, emails []string) ([]*decorator.Decorator, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByRef(ctx context.Context, ref string) (*booking.Booking, error)
	// Update persists the aggregate with a version compare-and-swap; a lost
	// race surfaces as a conflict-kind repository error.
	Update(ctx context.Context, b *booking.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *PaymentRecord) error
	FindBySessionID(ctx context.Context, sessionID string) (*PaymentRecord, error)
}

type DecoratorRepository interface {
	Create(ctx context.Context, d *decorator.Decorator) error
	FindByEmail(ctx context.Context, email string) (*decorator.Decorator, error)
	Update(ctx context.Context, d *decorator.Decorator) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, req CreateSessionRequest) (*CheckoutSession, error)
	FetchSession(ctx context.Context, sessionID string) (*CheckoutSessionStatus, error)
}

// UnitOfWork runs multi-repository writes in one transaction so reconciliation
// stays atomic (payment row + booking payment marker).
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
}
