//go:build unit || e2e

package builder

import (
	"decor-market/internal/domain/user"

	"github.com/google/uuid"
)

func CustomerActor(email string) user.Actor {
	return user.Actor{ID: uuid.New(), Email: email, Role: user.RoleCustomer}
}

func DecoratorActor(email string) user.Actor {
	return user.Actor{ID: uuid.New(), Email: email, Role: user.RoleDecorator}
}

func AdminActor() user.Actor {
	return user.Actor{ID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin}
}
