//go:build unit || e2e

package builder

import (
	"time"

	dombooking "decor-market/internal/domain/booking"
	"decor-market/internal/domain/coupon"
	reqdto "decor-market/internal/handler/dto/request"
	"decor-market/internal/usecase/commands"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                 uuid.UUID
	BookingRef         string
	CustomerEmail      string
	CustomerPhone      string
	ServiceID          uuid.UUID
	ServiceName        string
	ServiceUnit        string
	UnitCost           int64
	BookingDate        time.Time
	ServiceMode        string
	Location           string
	Coupon             *coupon.Coupon
	Status             string
	AssignedDecorators []string
	PaymentID          *uuid.UUID
	TransactionID      *string
	Version            int32
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:            uuid.New(),
		BookingRef:    "DCR-TESTREF1",
		CustomerEmail: "customer@example.com",
		CustomerPhone: "+1-555-0100",
		ServiceID:     uuid.New(),
		ServiceName:   "Wedding Decoration",
		ServiceUnit:   "event",
		UnitCost:      5000,
		BookingDate:   now.AddDate(0, 0, 14),
		ServiceMode:   "offline",
		Location:      "221B Baker Street",
		Status:        "pending",
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	contact, err := dombooking.NewCustomerContact(b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	mode, err := dombooking.ParseServiceMode(b.ServiceMode)
	if err != nil {
		return nil, err
	}
	status, err := dombooking.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}

	snapshot := dombooking.ServiceSnapshot{
		ServiceID: b.ServiceID,
		Name:      b.ServiceName,
		UnitCost:  b.UnitCost,
		Unit:      b.ServiceUnit,
	}
	return dombooking.ReconstructBooking(
		b.ID,
		b.BookingRef,
		contact,
		snapshot,
		b.BookingDate,
		mode,
		b.Location,
		dombooking.ComputePrice(b.UnitCost, b.Coupon),
		status,
		b.AssignedDecorators,
		b.PaymentID,
		b.TransactionID,
		b.Version,
		b.CreatedAt,
		b.UpdatedAt,
	), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:     b.ServiceID,
		BookingDate:   b.BookingDate,
		ServiceMode:   b.ServiceMode,
		Location:      b.Location,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:     b.ServiceID,
		BookingDate:   b.BookingDate,
		ServiceMode:   b.ServiceMode,
		Location:      b.Location,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
	}
}

func (b *BookingBuilder) BuildServiceRecord() *commands.ServiceRecord {
	return &commands.ServiceRecord{
		ID:       b.ServiceID,
		Name:     b.ServiceName,
		UnitCost: b.UnitCost,
		Unit:     b.ServiceUnit,
		Active:   true,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	pricing := dombooking.ComputePrice(b.UnitCost, b.Coupon)
	var location *string
	if b.Location != "" {
		loc := b.Location
		location = &loc
	}
	return &queries.BookingView{
		ID:                 b.ID,
		BookingRef:         b.BookingRef,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		ServiceUnit:        b.ServiceUnit,
		UnitCost:           b.UnitCost,
		BookingDate:        b.BookingDate,
		ServiceMode:        b.ServiceMode,
		Location:           location,
		PriceOriginal:      pricing.Original,
		DiscountCode:       pricing.DiscountCode,
		DiscountAmount:     pricing.DiscountAmount,
		PriceFinal:         pricing.Final,
		Status:             b.Status,
		AssignedDecorators: b.AssignedDecorators,
		PaymentID:          b.PaymentID,
		TransactionID:      b.TransactionID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	pricing := dombooking.ComputePrice(b.UnitCost, b.Coupon)
	return &queries.BookingListItem{
		ID:          b.ID,
		BookingRef:  b.BookingRef,
		ServiceName: b.ServiceName,
		BookingDate: b.BookingDate,
		ServiceMode: b.ServiceMode,
		PriceFinal:  pricing.Final,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCustomerEmail(email string) *BookingBuilder {
	b.CustomerEmail = email
	return b
}

func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithUnitCost(cost int64) *BookingBuilder {
	b.UnitCost = cost
	return b
}

func (b *BookingBuilder) WithServiceMode(mode string) *BookingBuilder {
	b.ServiceMode = mode
	return b
}

func (b *BookingBuilder) WithLocation(location string) *BookingBuilder {
	b.Location = location
	return b
}

func (b *BookingBuilder) WithCoupon(c *coupon.Coupon) *BookingBuilder {
	b.Coupon = c
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithDecorators(emails ...string) *BookingBuilder {
	b.AssignedDecorators = emails
	return b
}

func (b *BookingBuilder) WithVersion(version int32) *BookingBuilder {
	b.Version = version
	return b
}

func (b *BookingBuilder) AsPaid() *BookingBuilder {
	paymentID := uuid.New()
	txID := "txn_test_001"
	b.PaymentID = &paymentID
	b.TransactionID = &txID
	return b
}
