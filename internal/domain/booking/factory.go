package booking

import (
	"errors"
	"time"

	"decor-market/internal/domain/coupon"
	"decor-market/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrBookingDateRequired = errors.New("booking date is required")
	ErrInvalidServiceMode  = errors.New("invalid service mode")
	ErrLocationRequired    = errors.New("location is required for offline service")
	ErrInvalidBaseCost     = errors.New("service cost must be positive")
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateBooking validates the draft, freezes the service snapshot and the
// pricing breakdown, and returns a pending booking.
func (f *Factory) CreateBooking(
	customer CustomerContact,
	service ServiceSnapshot,
	bookingDate time.Time,
	mode ServiceMode,
	location string,
	coup *coupon.Coupon,
) (*Booking, error) {
	if bookingDate.IsZero() {
		return nil, ErrBookingDateRequired
	}
	if !mode.IsValid() {
		return nil, ErrInvalidServiceMode
	}
	if mode == ModeOffline && location == "" {
		return nil, ErrLocationRequired
	}
	if mode == ModeOnline {
		location = ""
	}
	if service.UnitCost <= 0 {
		return nil, ErrInvalidBaseCost
	}

	if coup != nil {
		if err := coup.ValidateUsage(f.Clock.Now()); err != nil {
			return nil, err
		}
	}

	return &Booking{
		id:          uuid.New(),
		bookingRef:  NewBookingRef(),
		customer:    customer,
		service:     service,
		bookingDate: bookingDate,
		serviceMode: mode,
		location:    location,
		pricing:     ComputePrice(service.UnitCost, coup),
		status:      StatusPending,
		version:     1,
	}, nil
}
