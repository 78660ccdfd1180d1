package readstore

import (
	"context"

	"decor-market/internal/domain/booking"
	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/usecase/queries"
)

type DecoratorReadStore struct {
	db db.DBTX
}

func NewDecoratorReadStore(dbtx db.DBTX) *DecoratorReadStore {
	return &DecoratorReadStore{db: dbtx}
}

func (s *DecoratorReadStore) List(ctx context.Context, status *string) ([]*queries.DecoratorView, error) {
	query := `
		SELECT id, email, display_name, status, specialties, rating, created_at
		FROM decorators`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list decorators", err)
	}
	defer rows.Close()

	views := make([]*queries.DecoratorView, 0)
	for rows.Next() {
		var v queries.DecoratorView
		if err := rows.Scan(&v.ID, &v.Email, &v.DisplayName, &v.Status, &v.Specialties, &v.Rating, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan decorator row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate decorator rows", err)
	}
	return views, nil
}

// Earnings sums the full final price of completed bookings per assigned
// decorator. With multiple decorators on one booking each sees the full
// amount; payout splitting is a settlement concern, not a reporting one.
func (s *DecoratorReadStore) Earnings(ctx context.Context, email string) (*queries.EarningsView, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM decorators WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check decorator existence", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("decorator not found", nil, infra.KindNotFound)
	}

	v := queries.EarningsView{DecoratorEmail: email}
	err = s.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(price_final), 0)
		FROM bookings
		WHERE status = $1 AND $2 = ANY(assigned_decorators)`,
		string(booking.StatusCompleted), email,
	).Scan(&v.CompletedBookings, &v.TotalEarned)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate decorator earnings", err)
	}
	return &v, nil
}
