//go:build unit

package promotion_test

import (
	"testing"

	"storefront-console/internal/domain/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	t.Run("normalizes to upper case and trims", func(t *testing.T) {
		code, err := promotion.NewCode("  summer10 ")
		require.NoError(t, err)
		assert.Equal(t, "SUMMER10", code.String())
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, raw := range []string{"", "AB", "HAS SPACE", "TOO-LONG!", "ABCDEFGHIJKLMNOPQRSTU"} {
			_, err := promotion.NewCode(raw)
			assert.ErrorIs(t, err, promotion.ErrInvalidCode, "raw=%q", raw)
		}
	})
}

func TestDiscountConstructors(t *testing.T) {
	t.Run("negative fixed amount", func(t *testing.T) {
		_, err := promotion.NewFixedDiscount(-100)
		assert.ErrorIs(t, err, promotion.ErrInvalidDiscountAmount)
	})

	t.Run("percentage out of range", func(t *testing.T) {
		_, err := promotion.NewPercentDiscount(-1, nil)
		assert.ErrorIs(t, err, promotion.ErrInvalidDiscountPercent)
		_, err = promotion.NewPercentDiscount(100.5, nil)
		assert.ErrorIs(t, err, promotion.ErrInvalidDiscountPercent)
	})

	t.Run("negative cap", func(t *testing.T) {
		cap := int64(-1)
		_, err := promotion.NewPercentDiscount(10, &cap)
		assert.ErrorIs(t, err, promotion.ErrInvalidDiscountAmount)
	})
}

func TestDiscountApply(t *testing.T) {
	capped := int64(100)

	cases := []struct {
		name         string
		discount     func() (promotion.Discount, error)
		original     int64
		wantDiscount int64
		wantFinal    int64
	}{
		{
			name:         "percent clamps to the cap",
			discount:     func() (promotion.Discount, error) { return promotion.NewPercentDiscount(20, &capped) },
			original:     1000,
			wantDiscount: 100,
			wantFinal:    900,
		},
		{
			name:         "percent below the cap is untouched",
			discount:     func() (promotion.Discount, error) { return promotion.NewPercentDiscount(20, &capped) },
			original:     300,
			wantDiscount: 60,
			wantFinal:    240,
		},
		{
			name:         "uncapped percent",
			discount:     func() (promotion.Discount, error) { return promotion.NewPercentDiscount(50, nil) },
			original:     1000,
			wantDiscount: 500,
			wantFinal:    500,
		},
		{
			name:         "fixed larger than the purchase floors at zero",
			discount:     func() (promotion.Discount, error) { return promotion.NewFixedDiscount(500) },
			original:     300,
			wantDiscount: 300,
			wantFinal:    0,
		},
		{
			name:         "fixed smaller than the purchase",
			discount:     func() (promotion.Discount, error) { return promotion.NewFixedDiscount(500) },
			original:     2000,
			wantDiscount: 500,
			wantFinal:    1500,
		},
		{
			name:         "hundred percent",
			discount:     func() (promotion.Discount, error) { return promotion.NewPercentDiscount(100, nil) },
			original:     999,
			wantDiscount: 999,
			wantFinal:    0,
		},
		{
			name:         "zero purchase amount",
			discount:     func() (promotion.Discount, error) { return promotion.NewFixedDiscount(500) },
			original:     0,
			wantDiscount: 0,
			wantFinal:    0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := tc.discount()
			require.NoError(t, err)

			discount, final := d.Apply(tc.original)
			assert.Equal(t, tc.wantDiscount, discount)
			assert.Equal(t, tc.wantFinal, final)
			assert.GreaterOrEqual(t, final, int64(0))
		})
	}
}
