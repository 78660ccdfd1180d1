package commands

import (
	"context"
	"log/slog"

	"decor-market/internal/infra"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/errs"
	"decor-market/internal/pkg/jwt"
	"decor-market/internal/pkg/password"
	"decor-market/internal/usecase/queries"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo UserRepository
	jwt      *jwt.Service
	clock    clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo: userRepo,
		jwt:      jwtService,
		clock:    clk,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !account.IsActive() {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(account.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateToken(account.ID(), account.Email().String(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}

	if err := c.userRepo.UpdateLastLogin(ctx, account.ID(), c.clock.Now()); err != nil {
		// Non-fatal bookkeeping
		slog.Warn("failed to update last login", "user_id", account.ID(), "error", err)
	}

	return &LoginResult{
		Token: token,
		User: &queries.AuthorizedUserView{
			ID:       account.ID(),
			Email:    account.Email().String(),
			Role:     account.Role().String(),
			IsActive: account.IsActive(),
		},
	}, nil
}
