package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes to upper case; codes are case-insensitive on input.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	flatAmount *int64
	percentOff *float64
}

func NewFlatDiscount(amount int64) (Discount, error) {
	if amount < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{flatAmount: &amount}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(flatAmount *int64, percentOff *float64) (Discount, error) {
	if flatAmount != nil && percentOff != nil {
		return Discount{}, errors.New("discount can only be either flat amount or percentage, not both")
	}
	if flatAmount == nil && percentOff == nil {
		return Discount{}, errors.New("discount must have either flat amount or percentage")
	}

	if flatAmount != nil {
		return NewFlatDiscount(*flatAmount)
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFlat() bool {
	return d.flatAmount != nil
}

func (d Discount) FlatAmount() int64 {
	if d.flatAmount != nil {
		return *d.flatAmount
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// AmountOff returns the discount taken off the given original price.
// The result is clamped to the original so the payable amount can never go
// negative, regardless of how large a flat discount is configured.
func (d Discount) AmountOff(original int64) int64 {
	if original <= 0 {
		return 0
	}

	var amount int64
	if d.IsPercentage() {
		amount = int64(math.Round(float64(original) * d.PercentOff() / 100.0))
	} else {
		amount = d.FlatAmount()
	}

	if amount > original {
		return original
	}
	if amount < 0 {
		return 0
	}
	return amount
}
