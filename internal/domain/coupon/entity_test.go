//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"decor-market/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestNewCode(t *testing.T) {
	t.Run("normalizes to upper case", func(t *testing.T) {
		code, err := coupon.NewCode("  newuser10 ")
		require.NoError(t, err)
		assert.Equal(t, "NEWUSER10", code.String())
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, s := range []string{"", "AB", "WITH SPACE", "lower-dash", "TOOLONGTOOLONGTOOLONGX"} {
			_, err := coupon.NewCode(s)
			assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode, "code %q", s)
		}
	})
}

func TestNewDiscount(t *testing.T) {
	t.Run("flat xor percent is enforced", func(t *testing.T) {
		_, err := coupon.NewDiscount(int64Ptr(500), float64Ptr(10))
		assert.Error(t, err)

		_, err = coupon.NewDiscount(nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects negative flat amount", func(t *testing.T) {
		_, err := coupon.NewFlatDiscount(-1)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)
	})

	t.Run("rejects out-of-range percentage", func(t *testing.T) {
		for _, p := range []float64{-0.1, 100.1} {
			_, err := coupon.NewPercentageDiscount(p)
			assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)
		}
	})
}

func TestDiscountAmountOff(t *testing.T) {
	cases := []struct {
		name     string
		flat     *int64
		percent  *float64
		original int64
		want     int64
	}{
		{name: "flat within price", flat: int64Ptr(500), original: 5000, want: 500},
		{name: "flat clamps to original", flat: int64Ptr(500), original: 300, want: 300},
		{name: "flat on zero price", flat: int64Ptr(500), original: 0, want: 0},
		{name: "ten percent", percent: float64Ptr(10), original: 5000, want: 500},
		{name: "hundred percent", percent: float64Ptr(100), original: 777, want: 777},
		{name: "zero percent", percent: float64Ptr(0), original: 5000, want: 0},
		{name: "percent rounds half up", percent: float64Ptr(15), original: 333, want: 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := coupon.NewDiscount(tc.flat, tc.percent)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.AmountOff(tc.original))
		})
	}
}

func TestCouponValidity(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	newCoupon := func(t *testing.T, from, to *time.Time) *coupon.Coupon {
		t.Helper()
		c, err := coupon.NewCoupon(uuid.New(), "SAVE10", int64Ptr(10), nil, from, to)
		require.NoError(t, err)
		return c
	}

	t.Run("open-ended coupon is always valid", func(t *testing.T) {
		c := newCoupon(t, nil, nil)
		assert.NoError(t, c.ValidateUsage(now))
	})

	t.Run("inside the window", func(t *testing.T) {
		from := now.AddDate(0, 0, -1)
		to := now.AddDate(0, 0, 1)
		c := newCoupon(t, &from, &to)
		assert.True(t, c.IsValidAt(now))
	})

	t.Run("before the window", func(t *testing.T) {
		from := now.AddDate(0, 0, 1)
		c := newCoupon(t, &from, nil)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponNotYetValid)
	})

	t.Run("after the window", func(t *testing.T) {
		to := now.AddDate(0, 0, -1)
		c := newCoupon(t, nil, &to)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponExpired)
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		c := newCoupon(t, &now, &now)
		assert.True(t, c.IsValidAt(now))
	})
}
