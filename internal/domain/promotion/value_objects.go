package promotion

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid voucher code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrMaxDiscountOnFixed     = errors.New("max discount cap only applies to percentage discounts")
)

var voucherCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is a case-normalized voucher code.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !voucherCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Discount is either a fixed amount off or a percentage off, the latter
// optionally capped at maxDiscountCents.
type Discount struct {
	amountOffCents   *int64
	percentOff       *float64
	maxDiscountCents *int64
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOffCents: &amountOffCents}, nil
}

func NewPercentDiscount(percentOff float64, maxDiscountCents *int64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if maxDiscountCents != nil && *maxDiscountCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{percentOff: &percentOff, maxDiscountCents: maxDiscountCents}, nil
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFixed() bool {
	return d.amountOffCents != nil
}

func (d Discount) AmountOffCents() int64 {
	if d.amountOffCents != nil {
		return *d.amountOffCents
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

func (d Discount) MaxDiscountCents() *int64 {
	return d.maxDiscountCents
}

// Apply computes the discount for originalCents and the resulting total.
// Pure and total: a fixed discount never exceeds the original amount and
// the final amount is floored at zero.
func (d Discount) Apply(originalCents int64) (discountCents, finalCents int64) {
	if d.IsPercentage() {
		discountCents = int64(float64(originalCents) * (d.PercentOff() / 100.0))
		if d.maxDiscountCents != nil && discountCents > *d.maxDiscountCents {
			discountCents = *d.maxDiscountCents
		}
	} else {
		discountCents = d.AmountOffCents()
		if discountCents > originalCents {
			discountCents = originalCents
		}
	}

	finalCents = originalCents - discountCents
	if finalCents < 0 {
		finalCents = 0
	}
	return discountCents, finalCents
}
