package request

import (
	"strings"
	"time"

	"decor-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	BookingDate   time.Time `json:"booking_date" binding:"required"`
	ServiceMode   string    `json:"service_mode" binding:"required"`
	Location      string    `json:"location,omitempty"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	CouponCode    *string   `json:"coupon_code,omitempty"`
}

func (r CreateBookingRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:     r.ServiceID,
		BookingDate:   r.BookingDate,
		ServiceMode:   r.ServiceMode,
		Location:      strings.TrimSpace(r.Location),
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		CouponCode:    r.GetCouponCode(),
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type AssignDecoratorsRequest struct {
	DecoratorEmails []string `json:"decorator_emails" binding:"required,min=1,dive,email"`
}
