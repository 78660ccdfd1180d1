//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"decor-market/internal/handler/api"
	reqdto "decor-market/internal/handler/dto/request"
	resdto "decor-market/internal/handler/dto/response"
	"decor-market/internal/usecase/commands"
	"decor-market/internal/usecase/queries"
	"decor-market/tests/common/httptest"
	"decor-market/tests/common/testutil"
	commandsmock "decor-market/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	authCommands *commandsmock.MockAuthCommands
	actors       testActors
	router       *gin.Engine
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authCommands = commandsmock.NewMockAuthCommands(s.ctrl)
	s.actors = newTestActors()

	handler := api.NewAuthHandler(s.authCommands)
	authMw := s.actors.authMiddleware()

	s.router = gin.New()
	auth := s.router.Group("/api/auth")
	auth.POST("/login", handler.Login)
	auth.GET("/me", authMw.RequireAuth(), handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	loginReq := reqdto.LoginRequest{
		Email:    "customer@example.com",
		Password: "secret-password",
	}

	s.Run("valid credentials return a token", func() {
		userID := uuid.New()
		s.authCommands.EXPECT().
			Login(gomock.Any(), "customer@example.com", "secret-password").
			Return(&commands.LoginResult{
				Token: "signed.jwt.token",
				User: &queries.AuthorizedUserView{
					ID:       userID,
					Email:    "customer@example.com",
					Role:     "customer",
					IsActive: true,
				},
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginReq, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("signed.jwt.token", resp.AccessToken)
		s.Require().NotNil(resp.User)
		s.Equal(userID, resp.User.ID)
		s.Equal("customer", resp.User.Role)
	})

	s.Run("wrong password", func() {
		s.authCommands.EXPECT().
			Login(gomock.Any(), "customer@example.com", "secret-password").
			Return(nil, commands.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", loginReq, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("binding validation", func() {
		tests := []struct {
			name string
			mut  func(map[string]any)
		}{
			{"missing email", testutil.Field("email", nil)},
			{"malformed email", testutil.Field("email", "not-an-email")},
			{"missing password", testutil.Field("password", nil)},
			{"short password", testutil.Field("password", "short")},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				body := testutil.DtoMap(s.T(), loginReq, tt.mut)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login", body, "")
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the authenticated identity", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, customerToken)

		var resp struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(s.actors.customer.ID.String(), resp.ID)
		s.Equal("customer@example.com", resp.Email)
		s.Equal("customer", resp.Role)
	})

	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}
