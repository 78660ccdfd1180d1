package decorator

import (
	"errors"
	"sort"
	"strings"
	"time"

	"decor-market/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrDisplayNameRequired = errors.New("display name is required")
	ErrInvalidRating       = errors.New("rating must be between 0 and 5")
	ErrNotPending          = errors.New("decorator is not pending approval")
	ErrAlreadyDisabled     = errors.New("decorator is already disabled")
)

// Decorator is a service-provider profile keyed by the user's email.
// Only active decorators are eligible for assignment; disabled decorators
// keep their booking history but receive no new work.
type Decorator struct {
	id          uuid.UUID
	email       user.Email
	displayName string
	status      Status
	specialties []string
	rating      float64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewDecorator creates a pending application.
func NewDecorator(email user.Email, displayName string, specialties []string) (*Decorator, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrDisplayNameRequired
	}

	return &Decorator{
		id:          uuid.New(),
		email:       email,
		displayName: displayName,
		status:      StatusPending,
		specialties: normalizeSpecialties(specialties),
	}, nil
}

func ReconstructDecorator(
	id uuid.UUID,
	email user.Email,
	displayName string,
	status Status,
	specialties []string,
	rating float64,
	createdAt, updatedAt time.Time,
) (*Decorator, error) {
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return &Decorator{
		id:          id,
		email:       email,
		displayName: displayName,
		status:      status,
		specialties: normalizeSpecialties(specialties),
		rating:      rating,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// Approve moves a pending application to active.
func (d *Decorator) Approve() error {
	if d.status != StatusPending {
		return ErrNotPending
	}
	d.status = StatusActive
	return nil
}

// Disable retires the decorator from new assignments.
func (d *Decorator) Disable() error {
	if d.status == StatusDisabled {
		return ErrAlreadyDisabled
	}
	d.status = StatusDisabled
	return nil
}

func (d *Decorator) IsEligibleForAssignment() bool {
	return d.status == StatusActive
}

func (d *Decorator) ID() uuid.UUID         { return d.id }
func (d *Decorator) Email() user.Email     { return d.email }
func (d *Decorator) DisplayName() string   { return d.displayName }
func (d *Decorator) Status() Status        { return d.status }
func (d *Decorator) Specialties() []string { return d.specialties }
func (d *Decorator) Rating() float64       { return d.rating }
func (d *Decorator) CreatedAt() time.Time  { return d.createdAt }
func (d *Decorator) UpdatedAt() time.Time  { return d.updatedAt }

func normalizeSpecialties(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
