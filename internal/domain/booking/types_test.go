//go:build unit

package booking_test

import (
	"testing"

	"decor-market/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	t.Run("forward chain advances one step at a time", func(t *testing.T) {
		chain := []booking.Status{
			booking.StatusPending,
			booking.StatusAssigned,
			booking.StatusPlanningPhase,
			booking.StatusMaterialsPrepared,
			booking.StatusOnTheWay,
			booking.StatusSetupInProgress,
			booking.StatusCompleted,
		}

		for i := 0; i < len(chain)-1; i++ {
			assert.True(t, chain[i].CanTransitionTo(chain[i+1]),
				"%s -> %s should be allowed", chain[i], chain[i+1])
		}
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		cases := []struct {
			from, to booking.Status
		}{
			{booking.StatusPending, booking.StatusPlanningPhase},
			{booking.StatusPending, booking.StatusCompleted},
			{booking.StatusAssigned, booking.StatusMaterialsPrepared},
			{booking.StatusPlanningPhase, booking.StatusOnTheWay},
			{booking.StatusOnTheWay, booking.StatusCompleted},
		}
		for _, tc := range cases {
			assert.False(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be rejected", tc.from, tc.to)
		}
	})

	t.Run("backward movement is rejected", func(t *testing.T) {
		cases := []struct {
			from, to booking.Status
		}{
			{booking.StatusAssigned, booking.StatusPending},
			{booking.StatusSetupInProgress, booking.StatusOnTheWay},
			{booking.StatusCompleted, booking.StatusSetupInProgress},
		}
		for _, tc := range cases {
			assert.False(t, tc.from.CanTransitionTo(tc.to),
				"%s -> %s should be rejected", tc.from, tc.to)
		}
	})

	t.Run("cancellation is reachable from every non-terminal state", func(t *testing.T) {
		nonTerminal := []booking.Status{
			booking.StatusPending,
			booking.StatusAssigned,
			booking.StatusPlanningPhase,
			booking.StatusMaterialsPrepared,
			booking.StatusOnTheWay,
			booking.StatusSetupInProgress,
		}
		for _, s := range nonTerminal {
			assert.True(t, s.CanTransitionTo(booking.StatusCancelled),
				"%s -> cancelled should be allowed", s)
		}

		assert.False(t, booking.StatusCompleted.CanTransitionTo(booking.StatusCancelled))
		assert.False(t, booking.StatusCancelled.CanTransitionTo(booking.StatusCancelled))
	})

	t.Run("terminal states have no outgoing transitions", func(t *testing.T) {
		assert.True(t, booking.StatusCompleted.IsTerminal())
		assert.True(t, booking.StatusCancelled.IsTerminal())
		assert.Nil(t, booking.StatusCompleted.NextStates())
		assert.Nil(t, booking.StatusCancelled.NextStates())
	})

	t.Run("NextStates lists successor and cancellation", func(t *testing.T) {
		assert.Equal(t,
			[]booking.Status{booking.StatusAssigned, booking.StatusCancelled},
			booking.StatusPending.NextStates())
		assert.Equal(t,
			[]booking.Status{booking.StatusCompleted, booking.StatusCancelled},
			booking.StatusSetupInProgress.NextStates())
	})
}

func TestParseStatus(t *testing.T) {
	valid := []string{
		"pending", "assigned", "planning_phase", "materials_prepared",
		"on_the_way", "setup_in_progress", "completed", "cancelled",
	}
	for _, s := range valid {
		parsed, err := booking.ParseStatus(s)
		require.NoError(t, err, "status %q should parse", s)
		assert.Equal(t, s, parsed.String())
	}

	for _, s := range []string{"", "unknown", "PENDING", "done"} {
		_, err := booking.ParseStatus(s)
		assert.Error(t, err, "status %q should be rejected", s)
	}
}

func TestParseServiceMode(t *testing.T) {
	for _, s := range []string{"offline", "online"} {
		mode, err := booking.ParseServiceMode(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(mode))
	}

	for _, s := range []string{"", "hybrid", "Offline"} {
		_, err := booking.ParseServiceMode(s)
		assert.Error(t, err)
	}
}
