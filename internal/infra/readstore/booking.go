package readstore

import (
	"context"

	"decor-market/internal/domain/booking"
	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/pgconv"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v             queries.BookingView
		location      pgtype.Text
		discountCode  pgtype.Text
		transactionID pgtype.Text
	)

	err := s.db.QueryRow(ctx, `
		SELECT id, booking_ref, customer_email, customer_phone,
		       service_id, service_name, service_unit, unit_cost,
		       booking_date, service_mode, location,
		       price_original, discount_code, discount_amount, price_final,
		       status, assigned_decorators, payment_id, transaction_id,
		       created_at, updated_at
		FROM bookings WHERE id = $1`,
		id,
	).Scan(
		&v.ID, &v.BookingRef, &v.CustomerEmail, &v.CustomerPhone,
		&v.ServiceID, &v.ServiceName, &v.ServiceUnit, &v.UnitCost,
		&v.BookingDate, &v.ServiceMode, &location,
		&v.PriceOriginal, &discountCode, &v.DiscountAmount, &v.PriceFinal,
		&v.Status, &v.AssignedDecorators, &v.PaymentID, &transactionID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}

	v.Location = pgconv.StringPtrFromPgtype(location)
	v.DiscountCode = pgconv.StringPtrFromPgtype(discountCode)
	v.TransactionID = pgconv.StringPtrFromPgtype(transactionID)
	return &v, nil
}

const bookingListQuery = `
	SELECT id, booking_ref, service_name, booking_date, service_mode,
	       price_final, status, created_at
	FROM bookings`

// Listings are schedule views: cancelled bookings never show up in them.
// ListAll can opt into cancelled rows for the admin audit view.

func (s *BookingReadStore) ListByCustomerEmail(ctx context.Context, email string) ([]*queries.BookingListItem, error) {
	return s.list(ctx,
		bookingListQuery+` WHERE customer_email = $1 AND status <> $2 ORDER BY created_at DESC`,
		email, string(booking.StatusCancelled))
}

func (s *BookingReadStore) ListByDecoratorEmail(ctx context.Context, email string) ([]*queries.BookingListItem, error) {
	return s.list(ctx,
		bookingListQuery+` WHERE $1 = ANY(assigned_decorators) AND status <> $2 ORDER BY created_at DESC`,
		email, string(booking.StatusCancelled))
}

func (s *BookingReadStore) ListAll(ctx context.Context, includeCancelled bool) ([]*queries.BookingListItem, error) {
	if includeCancelled {
		return s.list(ctx, bookingListQuery+` ORDER BY created_at DESC`)
	}
	return s.list(ctx,
		bookingListQuery+` WHERE status <> $1 ORDER BY created_at DESC`,
		string(booking.StatusCancelled))
}

func (s *BookingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.BookingRef, &item.ServiceName, &item.BookingDate,
			&item.ServiceMode, &item.PriceFinal, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
