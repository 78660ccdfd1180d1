//go:build unit || e2e

package builder

import (
	"time"

	domdecorator "decor-market/internal/domain/decorator"
	"decor-market/internal/domain/user"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type DecoratorBuilder struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Status      string
	Specialties []string
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewDecoratorBuilder() *DecoratorBuilder {
	now := time.Now()
	return &DecoratorBuilder{
		ID:          uuid.New(),
		Email:       "decorator@example.com",
		DisplayName: "Blossom Interiors",
		Status:      "active",
		Specialties: []string{"weddings", "balloons"},
		Rating:      4.5,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Build methods
func (d *DecoratorBuilder) BuildDomain() (*domdecorator.Decorator, error) {
	email, err := user.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	status, err := domdecorator.ParseStatus(d.Status)
	if err != nil {
		return nil, err
	}
	return domdecorator.ReconstructDecorator(d.ID, email, d.DisplayName, status, d.Specialties, d.Rating, d.CreatedAt, d.UpdatedAt)
}

func (d *DecoratorBuilder) BuildViewQuery() *queries.DecoratorView {
	return &queries.DecoratorView{
		ID:          d.ID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Status:      d.Status,
		Specialties: d.Specialties,
		Rating:      d.Rating,
		CreatedAt:   d.CreatedAt,
	}
}

// Fluent builder methods
func (d *DecoratorBuilder) WithEmail(email string) *DecoratorBuilder {
	d.Email = email
	return d
}

func (d *DecoratorBuilder) WithDisplayName(name string) *DecoratorBuilder {
	d.DisplayName = name
	return d
}

func (d *DecoratorBuilder) WithStatus(status string) *DecoratorBuilder {
	d.Status = status
	return d
}

func (d *DecoratorBuilder) WithRating(rating float64) *DecoratorBuilder {
	d.Rating = rating
	return d
}

func (d *DecoratorBuilder) AsPending() *DecoratorBuilder {
	d.Status = "pending"
	return d
}

func (d *DecoratorBuilder) AsDisabled() *DecoratorBuilder {
	d.Status = "disabled"
	return d
}
