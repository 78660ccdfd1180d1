package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID                 uuid.UUID  `json:"id"`
	BookingRef         string     `json:"booking_ref"`
	CustomerEmail      string     `json:"customer_email"`
	CustomerPhone      string     `json:"customer_phone"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceName        string     `json:"service_name"`
	ServiceUnit        string     `json:"service_unit"`
	UnitCost           int64      `json:"unit_cost"`
	BookingDate        time.Time  `json:"booking_date"`
	ServiceMode        string     `json:"service_mode"`
	Location           *string    `json:"location,omitempty"`
	PriceOriginal      int64      `json:"price_original"`
	DiscountCode       *string    `json:"discount_code,omitempty"`
	DiscountAmount     int64      `json:"discount_amount"`
	PriceFinal         int64      `json:"price_final"`
	Status             string     `json:"status"`
	AssignedDecorators []string   `json:"assigned_decorators"`
	PaymentID          *uuid.UUID `json:"payment_id,omitempty"`
	TransactionID      *string    `json:"transaction_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	BookingRef  string    `json:"booking_ref"`
	ServiceName string    `json:"service_name"`
	BookingDate time.Time `json:"booking_date"`
	ServiceMode string    `json:"service_mode"`
	PriceFinal  int64     `json:"price_final"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentView struct {
	ID            uuid.UUID `json:"id"`
	BookingID     uuid.UUID `json:"booking_id"`
	SessionID     string    `json:"session_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transaction_id"`
	PaidAt        time.Time `json:"paid_at"`
}

// ReceiptView is a pure projection over a paid booking; it is derived, never
// stored.
type ReceiptView struct {
	BookingRef     string    `json:"booking_ref"`
	CustomerEmail  string    `json:"customer_email"`
	ServiceName    string    `json:"service_name"`
	ServiceUnit    string    `json:"service_unit"`
	BookingDate    time.Time `json:"booking_date"`
	PriceOriginal  int64     `json:"price_original"`
	DiscountCode   *string   `json:"discount_code,omitempty"`
	DiscountAmount int64     `json:"discount_amount"`
	PriceFinal     int64     `json:"price_final"`
	AmountPaid     int64     `json:"amount_paid"`
	Currency       string    `json:"currency"`
	TransactionID  string    `json:"transaction_id"`
	PaidAt         time.Time `json:"paid_at"`
}

type DecoratorView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Status      string    `json:"status"`
	Specialties []string  `json:"specialties"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

type EarningsView struct {
	DecoratorEmail    string `json:"decorator_email"`
	CompletedBookings int64  `json:"completed_bookings"`
	TotalEarned       int64  `json:"total_earned"`
}

type RevenueView struct {
	CompletedBookings int64 `json:"completed_bookings"`
	PaidBookings      int64 `json:"paid_bookings"`
	TotalRevenue      int64 `json:"total_revenue"`
}

type ServiceView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	UnitCost int64     `json:"unit_cost"`
	Unit     string    `json:"unit"`
	Active   bool      `json:"active"`
}

type PricingQuoteView struct {
	ServiceID      uuid.UUID `json:"service_id"`
	Original       int64     `json:"original"`
	DiscountCode   *string   `json:"discount_code,omitempty"`
	DiscountAmount int64     `json:"discount_amount"`
	Final          int64     `json:"final"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Read store ports

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]*BookingListItem, error)
	ListByDecoratorEmail(ctx context.Context, email string) ([]*BookingListItem, error)
	ListAll(ctx context.Context, includeCancelled bool) ([]*BookingListItem, error)
}

type PaymentReadStore interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*PaymentView, error)
}

type DecoratorReadStore interface {
	List(ctx context.Context, status *string) ([]*DecoratorView, error)
	Earnings(ctx context.Context, email string) (*EarningsView, error)
}

type AnalyticsReadStore interface {
	Revenue(ctx context.Context) (*RevenueView, error)
}

type ServiceReadStore interface {
	ListActive(ctx context.Context) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
}

type CouponView struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	FlatAmount *int64     `json:"flat_amount,omitempty"`
	PercentOff *float64   `json:"percent_off,omitempty"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidTo    *time.Time `json:"valid_to,omitempty"`
}
