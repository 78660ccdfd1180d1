package response

import (
	"time"

	"decor-market/internal/domain/decorator"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type DecoratorResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Status      string    `json:"status"`
	Specialties []string  `json:"specialties"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

type EarningsResponse struct {
	DecoratorEmail    string `json:"decoratorEmail"`
	CompletedBookings int64  `json:"completedBookings"`
	TotalEarned       int64  `json:"totalEarned"`
}

func FromDecorator(d *decorator.Decorator) *DecoratorResponse {
	return &DecoratorResponse{
		ID:          d.ID(),
		Email:       d.Email().String(),
		DisplayName: d.DisplayName(),
		Status:      d.Status().String(),
		Specialties: d.Specialties(),
		Rating:      d.Rating(),
		CreatedAt:   d.CreatedAt(),
	}
}

func FromDecoratorView(v *queries.DecoratorView) *DecoratorResponse {
	return &DecoratorResponse{
		ID:          v.ID,
		Email:       v.Email,
		DisplayName: v.DisplayName,
		Status:      v.Status,
		Specialties: v.Specialties,
		Rating:      v.Rating,
		CreatedAt:   v.CreatedAt,
	}
}

func FromEarningsView(v *queries.EarningsView) *EarningsResponse {
	return &EarningsResponse{
		DecoratorEmail:    v.DecoratorEmail,
		CompletedBookings: v.CompletedBookings,
		TotalEarned:       v.TotalEarned,
	}
}
