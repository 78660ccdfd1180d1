package repository

import (
	"context"

	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/pgconv"
	"decor-market/internal/usecase/commands"
)

type PaymentRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewPaymentRepository(dbtx db.DBTX, clk clock.Clock) *PaymentRepository {
	return &PaymentRepository{db: dbtx, clock: clk}
}

func (r *PaymentRepository) Create(ctx context.Context, p *commands.PaymentRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, booking_id, session_id, amount, currency, transaction_id, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.BookingID, p.SessionID, p.Amount, p.Currency, p.TransactionID, p.PaidAt, r.clock.Now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindBySessionID(ctx context.Context, sessionID string) (*commands.PaymentRecord, error) {
	var p commands.PaymentRecord
	err := r.db.QueryRow(ctx, `
		SELECT id, booking_id, session_id, amount, currency, transaction_id, paid_at
		FROM payments WHERE session_id = $1`,
		sessionID,
	).Scan(&p.ID, &p.BookingID, &p.SessionID, &p.Amount, &p.Currency, &p.TransactionID, &p.PaidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by session id", err)
	}
	return &p, nil
}
