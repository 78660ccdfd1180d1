package response

import (
	"time"

	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	BookingRef         string     `json:"bookingRef"`
	CustomerEmail      string     `json:"customerEmail"`
	CustomerPhone      string     `json:"customerPhone"`
	ServiceID          uuid.UUID  `json:"serviceId"`
	ServiceName        string     `json:"serviceName"`
	ServiceUnit        string     `json:"serviceUnit"`
	BookingDate        time.Time  `json:"bookingDate"`
	ServiceMode        string     `json:"serviceMode"`
	Location           *string    `json:"location,omitempty"`
	PriceOriginal      int64      `json:"priceOriginal"`
	DiscountCode       *string    `json:"discountCode,omitempty"`
	DiscountAmount     int64      `json:"discountAmount"`
	PriceFinal         int64      `json:"priceFinal"`
	Status             string     `json:"status"`
	AssignedDecorators []string   `json:"assignedDecorators"`
	PaymentID          *uuid.UUID `json:"paymentId,omitempty"`
	TransactionID      *string    `json:"transactionId,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingRef  string    `json:"bookingRef"`
	ServiceName string    `json:"serviceName"`
	BookingDate time.Time `json:"bookingDate"`
	ServiceMode string    `json:"serviceMode"`
	PriceFinal  int64     `json:"priceFinal"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ReceiptResponse struct {
	BookingRef     string    `json:"bookingRef"`
	CustomerEmail  string    `json:"customerEmail"`
	ServiceName    string    `json:"serviceName"`
	ServiceUnit    string    `json:"serviceUnit"`
	BookingDate    time.Time `json:"bookingDate"`
	PriceOriginal  int64     `json:"priceOriginal"`
	DiscountCode   *string   `json:"discountCode,omitempty"`
	DiscountAmount int64     `json:"discountAmount"`
	PriceFinal     int64     `json:"priceFinal"`
	AmountPaid     int64     `json:"amountPaid"`
	Currency       string    `json:"currency"`
	TransactionID  string    `json:"transactionId"`
	PaidAt         time.Time `json:"paidAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                 v.ID,
		BookingRef:         v.BookingRef,
		CustomerEmail:      v.CustomerEmail,
		CustomerPhone:      v.CustomerPhone,
		ServiceID:          v.ServiceID,
		ServiceName:        v.ServiceName,
		ServiceUnit:        v.ServiceUnit,
		BookingDate:        v.BookingDate,
		ServiceMode:        v.ServiceMode,
		Location:           v.Location,
		PriceOriginal:      v.PriceOriginal,
		DiscountCode:       v.DiscountCode,
		DiscountAmount:     v.DiscountAmount,
		PriceFinal:         v.PriceFinal,
		Status:             v.Status,
		AssignedDecorators: v.AssignedDecorators,
		PaymentID:          v.PaymentID,
		TransactionID:      v.TransactionID,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:          v.ID,
		BookingRef:  v.BookingRef,
		ServiceName: v.ServiceName,
		BookingDate: v.BookingDate,
		ServiceMode: v.ServiceMode,
		PriceFinal:  v.PriceFinal,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
	}
}

func FromReceiptView(v *queries.ReceiptView) *ReceiptResponse {
	return &ReceiptResponse{
		BookingRef:     v.BookingRef,
		CustomerEmail:  v.CustomerEmail,
		ServiceName:    v.ServiceName,
		ServiceUnit:    v.ServiceUnit,
		BookingDate:    v.BookingDate,
		PriceOriginal:  v.PriceOriginal,
		DiscountCode:   v.DiscountCode,
		DiscountAmount: v.DiscountAmount,
		PriceFinal:     v.PriceFinal,
		AmountPaid:     v.AmountPaid,
		Currency:       v.Currency,
		TransactionID:  v.TransactionID,
		PaidAt:         v.PaidAt,
	}
}
