package repository

import (
	"context"
	"time"

	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/infra/db"
	"decor-market/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var (
		id           uuid.UUID
		emailCol     string
		passwordHash string
		role         string
		isActive     bool
		lastLogin    pgtype.Timestamptz
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, last_login, created_at, updated_at
		FROM users WHERE email = $1`,
		email,
	).Scan(&id, &emailCol, &passwordHash, &role, &isActive, &lastLogin, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	parsedEmail, err := user.NewEmail(emailCol)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid email in user row", err)
	}
	parsedRole, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role in user row", err)
	}

	return user.ReconstructUser(
		id, parsedEmail, passwordHash, parsedRole, isActive,
		pgconv.TimePtrFromPgtype(lastLogin), createdAt, updatedAt,
	), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = $1, updated_at = $1 WHERE id = $2`,
		at, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
