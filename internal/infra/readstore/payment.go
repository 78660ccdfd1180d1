package readstore

import (
	"context"

	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/pgconv"
	"decor-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (s *PaymentReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*queries.PaymentView, error) {
	var v queries.PaymentView
	err := s.db.QueryRow(ctx, `
		SELECT id, booking_id, session_id, amount, currency, transaction_id, paid_at
		FROM payments WHERE booking_id = $1`,
		bookingID,
	).Scan(&v.ID, &v.BookingID, &v.SessionID, &v.Amount, &v.Currency, &v.TransactionID, &v.PaidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment view", err)
	}
	return &v, nil
}
