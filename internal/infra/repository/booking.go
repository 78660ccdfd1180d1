package repository

import (
	"context"
	"time"

	"decor-market/internal/domain/booking"
	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewBookingRepository(dbtx db.DBTX, clk clock.Clock) *BookingRepository {
	return &BookingRepository{db: dbtx, clock: clk}
}

const bookingColumns = `
	id, booking_ref, customer_email, customer_phone,
	service_id, service_name, service_unit, unit_cost,
	booking_date, service_mode, location,
	price_original, discount_code, discount_amount, price_final,
	status, assigned_decorators, payment_id, transaction_id,
	version, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	now := r.clock.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (
			id, booking_ref, customer_email, customer_phone,
			service_id, service_name, service_unit, unit_cost,
			booking_date, service_mode, location,
			price_original, discount_code, discount_amount, price_final,
			status, assigned_decorators, payment_id, transaction_id,
			version, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)`,
		b.ID(), b.BookingRef(), b.Customer().Email(), b.Customer().Phone(),
		b.Service().ServiceID, b.Service().Name, b.Service().Unit, b.Service().UnitCost,
		b.BookingDate(), string(b.ServiceMode()), nullableLocation(b.Location()),
		b.Pricing().Original, pgconv.StringPtrToPgtype(b.Pricing().DiscountCode),
		b.Pricing().DiscountAmount, b.Pricing().Final,
		string(b.Status()), b.AssignedDecorators(), b.PaymentID(), b.TransactionID(),
		b.Version(), now, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

// FindByRef loads a booking by its public reference. Reconciliation uses it
// when the checkout session index no longer maps the session to a booking.
func (r *BookingRepository) FindByRef(ctx context.Context, ref string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE booking_ref = $1`, ref)

	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ref", err)
	}
	return b, nil
}

// Update writes the aggregate back guarded by the version column. A row that
// moved underneath us matches zero rows and surfaces as KindConflict.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET
			status = $1,
			assigned_decorators = $2,
			payment_id = $3,
			transaction_id = $4,
			version = version + 1,
			updated_at = $5
		WHERE id = $6 AND version = $7`,
		string(b.Status()), b.AssignedDecorators(), b.PaymentID(), b.TransactionID(),
		r.clock.Now(), b.ID(), b.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id                 uuid.UUID
		bookingRef         string
		customerEmail      string
		customerPhone      string
		serviceID          uuid.UUID
		serviceName        string
		serviceUnit        string
		unitCost           int64
		bookingDate        time.Time
		serviceMode        string
		location           pgtype.Text
		priceOriginal      int64
		discountCode       pgtype.Text
		discountAmount     int64
		priceFinal         int64
		status             string
		assignedDecorators []string
		paymentID          *uuid.UUID
		transactionID      pgtype.Text
		version            int32
		createdAt          time.Time
		updatedAt          time.Time
	)

	err := row.Scan(
		&id, &bookingRef, &customerEmail, &customerPhone,
		&serviceID, &serviceName, &serviceUnit, &unitCost,
		&bookingDate, &serviceMode, &location,
		&priceOriginal, &discountCode, &discountAmount, &priceFinal,
		&status, &assignedDecorators, &paymentID, &transactionID,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	contact, err := booking.NewCustomerContact(customerEmail, customerPhone)
	if err != nil {
		return nil, err
	}
	mode, err := booking.ParseServiceMode(serviceMode)
	if err != nil {
		return nil, err
	}
	parsedStatus, err := booking.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	loc := ""
	if location.Valid {
		loc = location.String
	}

	return booking.ReconstructBooking(
		id,
		bookingRef,
		contact,
		booking.ServiceSnapshot{
			ServiceID: serviceID,
			Name:      serviceName,
			UnitCost:  unitCost,
			Unit:      serviceUnit,
		},
		bookingDate,
		mode,
		loc,
		booking.Pricing{
			Original:       priceOriginal,
			DiscountCode:   pgconv.StringPtrFromPgtype(discountCode),
			DiscountAmount: discountAmount,
			Final:          priceFinal,
		},
		parsedStatus,
		assignedDecorators,
		paymentID,
		pgconv.StringPtrFromPgtype(transactionID),
		version,
		createdAt,
		updatedAt,
	), nil
}

func nullableLocation(loc string) pgtype.Text {
	if loc == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: loc, Valid: true}
}
