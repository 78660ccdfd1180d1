package booking

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"sort"
	"strings"

	"decor-market/internal/domain/coupon"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomerEmail = errors.New("customer email is required")
	ErrMissingCustomerPhone = errors.New("customer phone is required")
)

// CustomerContact identifies the booking customer on receipts and in search.
type CustomerContact struct {
	email string
	phone string
}

func NewCustomerContact(email, phone string) (CustomerContact, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)
	if email == "" {
		return CustomerContact{}, ErrMissingCustomerEmail
	}
	if phone == "" {
		return CustomerContact{}, ErrMissingCustomerPhone
	}
	return CustomerContact{email: email, phone: phone}, nil
}

func (c CustomerContact) Email() string { return c.email }
func (c CustomerContact) Phone() string { return c.phone }

// ServiceSnapshot is the catalog service copied at creation time. Later
// catalog edits must not change historical bookings, so this is immutable.
type ServiceSnapshot struct {
	ServiceID uuid.UUID
	Name      string
	UnitCost  int64
	Unit      string
}

// Pricing is the discount breakdown frozen into the booking at creation.
// It is never recomputed from live coupon data afterwards.
type Pricing struct {
	Original       int64
	DiscountCode   *string
	DiscountAmount int64
	Final          int64
}

// ComputePrice derives the pricing breakdown for a base cost and an optional
// resolved coupon. Pure and deterministic; the clamp inside Discount
// guarantees Final >= 0 and DiscountAmount <= Original.
func ComputePrice(original int64, c *coupon.Coupon) Pricing {
	p := Pricing{Original: original, Final: original}
	if c == nil {
		return p
	}

	code := c.Code().String()
	p.DiscountCode = &code
	p.DiscountAmount = c.AmountOff(original)
	p.Final = original - p.DiscountAmount
	return p
}

const refAlphabetLen = 8

var refEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewBookingRef generates the human-readable reference used on receipts,
// e.g. "DCR-4QX2JH9A".
func NewBookingRef() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure is not recoverable at this level
		panic(fmt.Sprintf("booking ref generation: %v", err))
	}
	return "DCR-" + refEncoding.EncodeToString(buf)[:refAlphabetLen]
}

// NormalizeDecorators lower-cases, deduplicates and sorts decorator emails so
// repeated assignment of the same set is byte-stable.
func NormalizeDecorators(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
