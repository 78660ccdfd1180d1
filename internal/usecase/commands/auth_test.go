//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"decor-market/internal/domain/user"
	"decor-market/internal/infra"
	"decor-market/internal/pkg/clock"
	"decor-market/internal/pkg/jwt"
	"decor-market/internal/pkg/password"
	"decor-market/internal/usecase/commands"
	commandsmock "decor-market/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	userRepo *commandsmock.MockUserRepository
	jwt      *jwt.Service
	commands commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = commandsmock.NewMockUserRepository(s.ctrl)
	s.jwt = jwt.NewService("test-secret", time.Hour)
	s.commands = commands.NewAuthCommands(s.userRepo, s.jwt, clock.NewMockClock(testTime))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) account(plain string, active bool) *user.User {
	email, err := user.NewEmail("alice@example.com")
	s.Require().NoError(err)
	hash, err := password.HashPassword(plain)
	s.Require().NoError(err)

	u := user.NewUser(email, hash, user.RoleCustomer)
	if !active {
		u = user.ReconstructUser(u.ID(), email, hash, user.RoleCustomer, false, nil, testTime, testTime)
	}
	return u
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("valid credentials produce a token", func() {
		account := s.account("s3cret-pass", true)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(account, nil)
		s.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), account.ID(), testTime).Return(nil)

		result, err := s.commands.Login(context.Background(), "alice@example.com", "s3cret-pass")
		s.Require().NoError(err)
		s.NotEmpty(result.Token)
		s.Equal("alice@example.com", result.User.Email)
		s.Equal("customer", result.User.Role)

		claims, err := s.jwt.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(account.ID(), claims.UserID)
	})

	s.Run("wrong password", func() {
		account := s.account("s3cret-pass", true)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(account, nil)

		_, err := s.commands.Login(context.Background(), "alice@example.com", "wrong")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown account", func() {
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, notFoundErr())

		_, err := s.commands.Login(context.Background(), "ghost@example.com", "whatever")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("inactive account", func() {
		account := s.account("s3cret-pass", false)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(account, nil)

		_, err := s.commands.Login(context.Background(), "alice@example.com", "s3cret-pass")
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("failed last-login bookkeeping does not fail the login", func() {
		account := s.account("s3cret-pass", true)
		s.userRepo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(account, nil)
		s.userRepo.EXPECT().UpdateLastLogin(gomock.Any(), account.ID(), testTime).
			Return(infra.WrapRepoErr("write failed", nil))

		result, err := s.commands.Login(context.Background(), "alice@example.com", "s3cret-pass")
		s.NoError(err)
		s.NotEmpty(result.Token)
	})
}
