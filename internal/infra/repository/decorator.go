package repository

import (
	"context"
	"time"

	"decor-market/internal/domain/decorator"
	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DecoratorRepository struct {
	db    db.DBTX
	clock clock.Clock
}

func NewDecoratorRepository(dbtx db.DBTX, clk clock.Clock) *DecoratorRepository {
	return &DecoratorRepository{db: dbtx, clock: clk}
}

const decoratorColumns = `id, email, display_name, status, specialties, rating, created_at, updated_at`

func (r *DecoratorRepository) Create(ctx context.Context, d *decorator.Decorator) error {
	now := r.clock.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO decorators (id, email, display_name, status, specialties, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID(), d.Email().String(), d.DisplayName(), string(d.Status()), d.Specialties(), d.Rating(), now, now,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create decorator", err)
	}
	return nil
}

func (r *DecoratorRepository) FindByEmail(ctx context.Context, email string) (*decorator.Decorator, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+decoratorColumns+` FROM decorators WHERE email = $1`, email)

	d, err := scanDecorator(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("decorator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find decorator by email", err)
	}
	return d, nil
}

// FindByEmails returns only the rows that exist; the caller decides whether a
// missing email is an error.
func (r *DecoratorRepository) FindByEmails(ctx context.Context, emails []string) ([]*decorator.Decorator, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+decoratorColumns+` FROM decorators WHERE email = ANY($1)`, emails)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find decorators by emails", err)
	}
	defer rows.Close()

	var out []*decorator.Decorator
	for rows.Next() {
		d, err := scanDecorator(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan decorator row", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate decorator rows", err)
	}
	return out, nil
}

func (r *DecoratorRepository) Update(ctx context.Context, d *decorator.Decorator) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE decorators SET
			display_name = $1,
			status = $2,
			specialties = $3,
			rating = $4,
			updated_at = $5
		WHERE id = $6`,
		d.DisplayName(), string(d.Status()), d.Specialties(), d.Rating(), r.clock.Now(), d.ID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update decorator", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("decorator not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanDecorator(row rowScanner) (*decorator.Decorator, error) {
	var (
		id          uuid.UUID
		email       string
		displayName string
		status      string
		specialties []string
		rating      float64
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&id, &email, &displayName, &status, &specialties, &rating, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	parsedEmail, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	parsedStatus, err := decorator.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return decorator.ReconstructDecorator(id, parsedEmail, displayName, parsedStatus, specialties, rating, createdAt, updatedAt)
}
