//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"storefront-console/internal/domain/promotion"
	"storefront-console/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	until = now.Add(24 * time.Hour)
)

func activeVoucher(t *testing.T, mutate ...func(*builder.VoucherBuilder)) *promotion.Promotion {
	t.Helper()
	b := builder.NewVoucherBuilder().WithValidity(now.Add(-time.Hour), &until)
	for _, m := range mutate {
		m(b)
	}
	promo, err := b.BuildDomain()
	require.NoError(t, err)
	return promo
}

func purchase(amountCents int64) promotion.PurchaseContext {
	return promotion.PurchaseContext{AmountCents: amountCents}
}

func TestValidateChecksInOrder(t *testing.T) {
	t.Run("an inactive voucher reports Inactive even when also expired", func(t *testing.T) {
		past := now.Add(-time.Minute)
		promo := activeVoucher(t, func(b *builder.VoucherBuilder) {
			b.WithValidity(now.Add(-2*time.Hour), &past).Inactive()
		})

		result := promo.Validate(now, purchase(1000), nil)
		assert.Equal(t, promotion.ReasonInactive, result.Reason())
	})

	t.Run("an exhausted voucher reports the cap before minimum purchase", func(t *testing.T) {
		limit := 5
		rec := activeVoucher(t, func(b *builder.VoucherBuilder) {
			b.WithUsageLimit(limit).WithMinPurchase(5000)
		}).ToRecord()
		rec.UsageCount = limit
		promo := promotion.Reconstruct(rec)

		result := promo.Validate(now, purchase(100), nil)
		assert.Equal(t, promotion.ReasonUsageLimitReached, result.Reason())
	})
}

func TestValidateWindowBoundaries(t *testing.T) {
	promo := activeVoucher(t)

	cases := []struct {
		name   string
		at     time.Time
		valid  bool
		reason promotion.Reason
	}{
		{name: "one second before valid_from", at: now.Add(-time.Hour).Add(-time.Second), valid: false, reason: promotion.ReasonNotYetValid},
		{name: "exactly at valid_from", at: now.Add(-time.Hour), valid: true},
		{name: "well inside the window", at: now, valid: true},
		{name: "exactly at valid_until", at: until, valid: true},
		{name: "one second past valid_until", at: until.Add(time.Second), valid: false, reason: promotion.ReasonExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := promo.Validate(tc.at, purchase(1000), nil)
			assert.Equal(t, tc.valid, result.IsValid())
			if !tc.valid {
				assert.Equal(t, tc.reason, result.Reason())
			}
		})
	}

	t.Run("nil valid_until never expires", func(t *testing.T) {
		open := activeVoucher(t, func(b *builder.VoucherBuilder) {
			b.WithValidity(now.Add(-time.Hour), nil)
		})
		result := open.Validate(now.AddDate(10, 0, 0), purchase(1000), nil)
		assert.True(t, result.IsValid())
	})
}

func TestValidateUsageLimits(t *testing.T) {
	t.Run("global cap blocks at the limit, not before", func(t *testing.T) {
		limit := 3
		rec := activeVoucher(t, func(b *builder.VoucherBuilder) {
			b.WithUsageLimit(limit)
		}).ToRecord()

		rec.UsageCount = limit - 1
		assert.True(t, promotion.Reconstruct(rec).Validate(now, purchase(1000), nil).IsValid())

		rec.UsageCount = limit
		result := promotion.Reconstruct(rec).Validate(now, purchase(1000), nil)
		assert.Equal(t, promotion.ReasonUsageLimitReached, result.Reason())
	})

	t.Run("raising the limit reopens an exhausted voucher", func(t *testing.T) {
		limit := 1
		rec := activeVoucher(t, func(b *builder.VoucherBuilder) {
			b.WithUsageLimit(limit)
		}).ToRecord()
		rec.UsageCount = 1
		require.True(t, promotion.Reconstruct(rec).IsExhausted())

		raised := 10
		rec.UsageLimit = &raised
		promo := promotion.Reconstruct(rec)
		assert.False(t, promo.IsExhausted())
		assert.True(t, promo.Validate(now, purchase(1000), nil).IsValid())
	})

	t.Run("per-customer limit applies only when a customer is identified", func(t *testing.T) {
		promo := activeVoucher(t, func(b *builder.VoucherBuilder) {
			b.WithPerCustomerLimit(2)
		})

		uses := 2
		result := promo.Validate(now, purchase(1000), &uses)
		assert.Equal(t, promotion.ReasonCustomerLimitReached, result.Reason())

		below := 1
		assert.True(t, promo.Validate(now, purchase(1000), &below).IsValid())

		// anonymous shopper: no count available, check skipped
		assert.True(t, promo.Validate(now, purchase(1000), nil).IsValid())
	})
}

func TestValidateEligibilityAndMinimum(t *testing.T) {
	t.Run("minimum purchase boundary", func(t *testing.T) {
		promo := activeVoucher(t, func(b *builder.VoucherBuilder) {
			b.WithMinPurchase(5000)
		})

		assert.Equal(t, promotion.ReasonBelowMinimumPurchase, promo.Validate(now, purchase(4999), nil).Reason())
		assert.True(t, promo.Validate(now, purchase(5000), nil).IsValid())
	})

	t.Run("customer class restriction", func(t *testing.T) {
		promo, err := builder.NewDiscountBuilder().
			WithValidity(now.Add(-time.Hour), &until).
			WithCustomerClass("vip").
			BuildDomain()
		require.NoError(t, err)

		ctx := promotion.PurchaseContext{AmountCents: 1000, CustomerClass: "regular"}
		assert.Equal(t, promotion.ReasonIneligible, promo.Validate(now, ctx, nil).Reason())

		ctx.CustomerClass = "vip"
		assert.True(t, promo.Validate(now, ctx, nil).IsValid())
	})
}

func TestValidateApplicability(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()
	category := uuid.New()

	t.Run("product-scoped discount needs at least one matching product", func(t *testing.T) {
		promo, err := builder.NewDiscountBuilder().
			WithValidity(now.Add(-time.Hour), &until).
			WithProducts(productA).
			BuildDomain()
		require.NoError(t, err)

		miss := promotion.PurchaseContext{AmountCents: 1000, ProductIDs: []uuid.UUID{productB}}
		assert.Equal(t, promotion.ReasonNotApplicable, promo.Validate(now, miss, nil).Reason())

		hit := promotion.PurchaseContext{AmountCents: 1000, ProductIDs: []uuid.UUID{productB, productA}}
		assert.True(t, promo.Validate(now, hit, nil).IsValid())
	})

	t.Run("category-scoped discount matches on categories", func(t *testing.T) {
		promo, err := builder.NewDiscountBuilder().
			WithValidity(now.Add(-time.Hour), &until).
			WithCategories(category).
			BuildDomain()
		require.NoError(t, err)

		miss := promotion.PurchaseContext{AmountCents: 1000, CategoryIDs: []uuid.UUID{uuid.New()}}
		assert.Equal(t, promotion.ReasonNotApplicable, promo.Validate(now, miss, nil).Reason())

		hit := promotion.PurchaseContext{AmountCents: 1000, CategoryIDs: []uuid.UUID{category}}
		assert.True(t, promo.Validate(now, hit, nil).IsValid())
	})

	t.Run("vouchers apply to the whole cart regardless of contents", func(t *testing.T) {
		promo := activeVoucher(t)
		ctx := promotion.PurchaseContext{AmountCents: 1000, ProductIDs: []uuid.UUID{uuid.New()}}
		assert.True(t, promo.Validate(now, ctx, nil).IsValid())
	})
}

func TestDiscountAsymmetry(t *testing.T) {
	// Discounts carry no usage cap: a reconstructed discount with a huge
	// usage count still validates.
	rec, err := builder.NewDiscountBuilder().
		WithValidity(now.Add(-time.Hour), &until).
		BuildDomain()
	require.NoError(t, err)

	flat := rec.ToRecord()
	flat.UsageCount = 1_000_000
	promo := promotion.Reconstruct(flat)

	assert.True(t, promo.Validate(now, purchase(1000), nil).IsValid())
	assert.False(t, promo.IsExhausted())
}

func TestStatus(t *testing.T) {
	promo := activeVoucher(t)

	assert.Equal(t, promotion.StatusScheduled, promo.Status(now.Add(-2*time.Hour)))
	assert.Equal(t, promotion.StatusActive, promo.Status(now))
	assert.Equal(t, promotion.StatusExpired, promo.Status(until.Add(time.Second)))

	suspended := activeVoucher(t, func(b *builder.VoucherBuilder) { b.Inactive() })
	assert.Equal(t, promotion.StatusSuspended, suspended.Status(now))
}

func TestConstructorInvariants(t *testing.T) {
	t.Run("valid_from after valid_until is rejected", func(t *testing.T) {
		before := now.Add(-time.Hour)
		_, err := builder.NewVoucherBuilder().WithValidity(now, &before).BuildDomain()
		assert.ErrorIs(t, err, promotion.ErrInvalidValidityWindow)
	})

	t.Run("negative minimum purchase is rejected", func(t *testing.T) {
		_, err := builder.NewVoucherBuilder().
			WithValidity(now, &until).
			WithMinPurchase(-1).
			BuildDomain()
		assert.ErrorIs(t, err, promotion.ErrNegativeMinPurchase)
	})

	t.Run("zero usage limit is rejected", func(t *testing.T) {
		_, err := builder.NewVoucherBuilder().
			WithValidity(now, &until).
			WithUsageLimit(0).
			BuildDomain()
		assert.ErrorIs(t, err, promotion.ErrInvalidUsageLimit)
	})

	t.Run("voucher code is validated", func(t *testing.T) {
		_, err := builder.NewVoucherBuilder().
			WithValidity(now, &until).
			WithCode("no spaces allowed").
			BuildDomain()
		assert.ErrorIs(t, err, promotion.ErrInvalidCode)
	})
}
