//go:build unit

package api_test

import (
	"errors"

	"decor-market/internal/domain/user"
	"decor-market/internal/handler/middleware"
	"decor-market/tests/common/builder"

	"github.com/gin-gonic/gin"
)

const (
	customerToken  = "customer-token"
	decoratorToken = "decorator-token"
	adminToken     = "admin-token"
)

type staticTokenValidator map[string]user.Actor

func (v staticTokenValidator) ValidateToken(token string) (user.Actor, error) {
	actor, ok := v[token]
	if !ok {
		return user.Actor{}, errors.New("unknown token")
	}
	return actor, nil
}

// testActors maps the well-known test tokens to one actor per role.
type testActors struct {
	customer  user.Actor
	decorator user.Actor
	admin     user.Actor
}

func newTestActors() testActors {
	return testActors{
		customer:  builder.CustomerActor("customer@example.com"),
		decorator: builder.DecoratorActor("amy@example.com"),
		admin:     builder.AdminActor(),
	}
}

func (a testActors) authMiddleware() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(staticTokenValidator{
		customerToken:  a.customer,
		decoratorToken: a.decorator,
		adminToken:     a.admin,
	})
}

func init() {
	gin.SetMode(gin.TestMode)
}
