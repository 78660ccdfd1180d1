//go:build unit

package decorator_test

import (
	"testing"

	"decor-market/internal/domain/decorator"
	"decor-market/internal/domain/user"
	"decor-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	email, err := user.NewEmail(s)
	require.NoError(t, err)
	return email
}

func TestNewDecorator(t *testing.T) {
	t.Run("application starts pending", func(t *testing.T) {
		d, err := decorator.NewDecorator(
			mustEmail(t, "zoe@example.com"),
			"Blossom Interiors",
			[]string{" Weddings", "balloons", "weddings"})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, d.ID())
		assert.Equal(t, decorator.StatusPending, d.Status())
		assert.False(t, d.IsEligibleForAssignment())
		assert.Equal(t, []string{"balloons", "weddings"}, d.Specialties())
	})

	t.Run("display name is required", func(t *testing.T) {
		_, err := decorator.NewDecorator(mustEmail(t, "zoe@example.com"), "  ", nil)
		assert.ErrorIs(t, err, decorator.ErrDisplayNameRequired)
	})
}

func TestDecoratorLifecycle(t *testing.T) {
	t.Run("approve moves pending to active", func(t *testing.T) {
		d, err := builder.NewDecoratorBuilder().AsPending().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, d.Approve())
		assert.Equal(t, decorator.StatusActive, d.Status())
		assert.True(t, d.IsEligibleForAssignment())
	})

	t.Run("approve rejects a non-pending decorator", func(t *testing.T) {
		for _, status := range []string{"active", "disabled"} {
			d, err := builder.NewDecoratorBuilder().WithStatus(status).BuildDomain()
			require.NoError(t, err)
			assert.ErrorIs(t, d.Approve(), decorator.ErrNotPending, "status %s", status)
		}
	})

	t.Run("disable works from pending and active", func(t *testing.T) {
		for _, status := range []string{"pending", "active"} {
			d, err := builder.NewDecoratorBuilder().WithStatus(status).BuildDomain()
			require.NoError(t, err)

			require.NoError(t, d.Disable())
			assert.Equal(t, decorator.StatusDisabled, d.Status())
			assert.False(t, d.IsEligibleForAssignment())
		}
	})

	t.Run("disable is rejected when already disabled", func(t *testing.T) {
		d, err := builder.NewDecoratorBuilder().AsDisabled().BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, d.Disable(), decorator.ErrAlreadyDisabled)
	})
}

func TestReconstructDecorator(t *testing.T) {
	t.Run("rating outside 0..5 is rejected", func(t *testing.T) {
		for _, rating := range []float64{-0.5, 5.5} {
			_, err := builder.NewDecoratorBuilder().WithRating(rating).BuildDomain()
			assert.ErrorIs(t, err, decorator.ErrInvalidRating, "rating %v", rating)
		}
	})

	t.Run("boundary ratings are accepted", func(t *testing.T) {
		for _, rating := range []float64{0, 5} {
			d, err := builder.NewDecoratorBuilder().WithRating(rating).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, rating, d.Rating())
		}
	})
}

func TestDecoratorParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "active", "disabled"} {
		status, err := decorator.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := decorator.ParseStatus("retired")
	assert.Error(t, err)
}
