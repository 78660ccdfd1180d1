package response

import (
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	UnitCost int64     `json:"unitCost"`
	Unit     string    `json:"unit"`
}

type PricingQuoteResponse struct {
	ServiceID      uuid.UUID `json:"serviceId"`
	Original       int64     `json:"original"`
	DiscountCode   *string   `json:"discountCode,omitempty"`
	DiscountAmount int64     `json:"discountAmount"`
	Final          int64     `json:"final"`
}

type RevenueResponse struct {
	CompletedBookings int64 `json:"completedBookings"`
	PaidBookings      int64 `json:"paidBookings"`
	TotalRevenue      int64 `json:"totalRevenue"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:       v.ID,
		Name:     v.Name,
		UnitCost: v.UnitCost,
		Unit:     v.Unit,
	}
}

func FromPricingQuoteView(v *queries.PricingQuoteView) *PricingQuoteResponse {
	return &PricingQuoteResponse{
		ServiceID:      v.ServiceID,
		Original:       v.Original,
		DiscountCode:   v.DiscountCode,
		DiscountAmount: v.DiscountAmount,
		Final:          v.Final,
	}
}

func FromRevenueView(v *queries.RevenueView) *RevenueResponse {
	return &RevenueResponse{
		CompletedBookings: v.CompletedBookings,
		PaidBookings:      v.PaidBookings,
		TotalRevenue:      v.TotalRevenue,
	}
}
