//go:build unit

package user_test

import (
	"testing"

	"decor-market/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := user.NewEmail(" Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email.String())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, s := range []string{"", "not-an-email", "missing@tld", "@example.com"} {
			_, err := user.NewEmail(s)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "email %q", s)
		}
	})
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"customer", "decorator", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestActorPredicates(t *testing.T) {
	admin := user.Actor{ID: uuid.New(), Email: "admin@example.com", Role: user.RoleAdmin}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsCustomer())
	assert.False(t, admin.IsDecorator())

	customer := user.Actor{ID: uuid.New(), Email: "c@example.com", Role: user.RoleCustomer}
	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsAdmin())

	dec := user.Actor{ID: uuid.New(), Email: "d@example.com", Role: user.RoleDecorator}
	assert.True(t, dec.IsDecorator())
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("alice@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed_password", user.RoleCustomer)
	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
	assert.Equal(t, user.RoleCustomer, u.Role())
}
