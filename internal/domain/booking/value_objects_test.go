//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"decor-market/internal/domain/booking"
	"decor-market/internal/domain/coupon"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoupon(t *testing.T, code string, flat *int64, percent *float64) *coupon.Coupon {
	t.Helper()
	c, err := coupon.NewCoupon(uuid.New(), code, flat, percent, nil, nil)
	require.NoError(t, err)
	return c
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestComputePrice(t *testing.T) {
	t.Run("no coupon keeps the original price", func(t *testing.T) {
		p := booking.ComputePrice(5000, nil)
		assert.Equal(t, int64(5000), p.Original)
		assert.Nil(t, p.DiscountCode)
		assert.Equal(t, int64(0), p.DiscountAmount)
		assert.Equal(t, int64(5000), p.Final)
	})

	t.Run("percentage coupon", func(t *testing.T) {
		c := mustCoupon(t, "NEWUSER10", nil, float64Ptr(10))
		p := booking.ComputePrice(5000, c)
		require.NotNil(t, p.DiscountCode)
		assert.Equal(t, "NEWUSER10", *p.DiscountCode)
		assert.Equal(t, int64(500), p.DiscountAmount)
		assert.Equal(t, int64(4500), p.Final)
	})

	t.Run("flat coupon", func(t *testing.T) {
		c := mustCoupon(t, "FLAT500", int64Ptr(500), nil)
		p := booking.ComputePrice(5000, c)
		assert.Equal(t, int64(500), p.DiscountAmount)
		assert.Equal(t, int64(4500), p.Final)
	})

	t.Run("flat coupon larger than the price clamps to zero", func(t *testing.T) {
		c := mustCoupon(t, "FLAT500", int64Ptr(500), nil)
		p := booking.ComputePrice(300, c)
		assert.Equal(t, int64(300), p.DiscountAmount)
		assert.Equal(t, int64(0), p.Final)
	})

	t.Run("full percentage discount", func(t *testing.T) {
		c := mustCoupon(t, "FREEBIE", nil, float64Ptr(100))
		p := booking.ComputePrice(1200, c)
		assert.Equal(t, int64(1200), p.DiscountAmount)
		assert.Equal(t, int64(0), p.Final)
	})

	t.Run("percentage rounds to nearest unit", func(t *testing.T) {
		c := mustCoupon(t, "SAVE15", nil, float64Ptr(15))
		p := booking.ComputePrice(333, c)
		// 333 * 0.15 = 49.95 -> 50
		assert.Equal(t, int64(50), p.DiscountAmount)
		assert.Equal(t, int64(283), p.Final)
	})
}

func TestNewCustomerContact(t *testing.T) {
	t.Run("normalizes email casing and whitespace", func(t *testing.T) {
		c, err := booking.NewCustomerContact("  Alice@Example.COM ", " +1-555-0100 ")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", c.Email())
		assert.Equal(t, "+1-555-0100", c.Phone())
	})

	t.Run("requires email", func(t *testing.T) {
		_, err := booking.NewCustomerContact("", "+1-555-0100")
		assert.ErrorIs(t, err, booking.ErrMissingCustomerEmail)
	})

	t.Run("requires phone", func(t *testing.T) {
		_, err := booking.NewCustomerContact("alice@example.com", "  ")
		assert.ErrorIs(t, err, booking.ErrMissingCustomerPhone)
	})
}

func TestNewBookingRef(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		ref := booking.NewBookingRef()
		assert.True(t, strings.HasPrefix(ref, "DCR-"), "ref %q should carry the DCR prefix", ref)
		assert.Len(t, ref, len("DCR-")+8)
		seen[ref] = struct{}{}
	}
	assert.Len(t, seen, 100, "refs should not collide in a small sample")
}

func TestNormalizeDecorators(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "lower-cases, trims, dedupes and sorts",
			in:   []string{" Zoe@Example.com", "amy@example.com", "zoe@example.com", ""},
			want: []string{"amy@example.com", "zoe@example.com"},
		},
		{
			name: "empty input yields empty set",
			in:   []string{"", "  "},
			want: []string{},
		},
		{
			name: "nil input yields empty set",
			in:   nil,
			want: []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.NormalizeDecorators(tc.in)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("NormalizeDecorators mismatch (-want +got):\n%s", diff)
			}
			assert.NotNil(t, got)
		})
	}
}

func TestServiceSnapshotIsFrozen(t *testing.T) {
	// The snapshot is a value copy; mutating the source after the fact must
	// not leak into a booking that already captured it.
	snapshot := booking.ServiceSnapshot{
		ServiceID: uuid.New(),
		Name:      "Birthday Decoration",
		UnitCost:  1500,
		Unit:      "event",
	}
	captured := snapshot
	snapshot.UnitCost = 9999
	snapshot.Name = "Renamed"

	assert.Equal(t, int64(1500), captured.UnitCost)
	assert.Equal(t, "Birthday Decoration", captured.Name)
}
