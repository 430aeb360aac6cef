//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/infra"
	"storefront-console/internal/pkg/clock"
	"storefront-console/internal/usecase/commands"
	"storefront-console/tests/common/builder"
	commandsmock "storefront-console/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newRedeemFixture(t *testing.T) (*commandsmock.MockPromotionRepository, commands.PromotionCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockPromotionRepository(ctrl)
	cmds := commands.NewPromotionCommands(repo, clock.NewMockClock(testNow))
	return repo, cmds
}

func voucherRecord(t *testing.T, mutate ...func(*builder.VoucherBuilder)) promotion.Record {
	t.Helper()
	until := testNow.Add(24 * time.Hour)
	b := builder.NewVoucherBuilder().WithValidity(testNow.Add(-time.Hour), &until)
	for _, m := range mutate {
		m(b)
	}
	return b.BuildRecord()
}

func redeemInput(code string) commands.RedeemInput {
	return commands.RedeemInput{
		Code:       code,
		CustomerID: uuid.New(),
		OrderID:    uuid.New(),
		Purchase:   promotion.PurchaseContext{AmountCents: 1000},
	}
}

func TestRedeem(t *testing.T) {
	t.Run("success records the usage and returns the amounts", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		rec := voucherRecord(t) // 10% off, no cap

		repo.EXPECT().FindVoucherByCode(gomock.Any(), "SUMMER10").Return(&rec, nil)
		repo.EXPECT().AtomicIncrementAndAppendUsage(gomock.Any(), rec.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, usage promotion.UsageRecord) error {
				assert.Equal(t, int64(1000), usage.OriginalCents)
				assert.Equal(t, int64(100), usage.DiscountCents)
				assert.Equal(t, int64(900), usage.FinalCents)
				assert.Equal(t, testNow, usage.UsedAt)
				return nil
			})

		result, err := cmds.Redeem(context.Background(), redeemInput("SUMMER10"))
		require.NoError(t, err)
		assert.True(t, result.Validation.IsValid())
		require.NotNil(t, result.Usage)
		assert.Equal(t, int64(900), result.Usage.FinalCents)
	})

	t.Run("unknown code is an invalid result, not an error", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		repo.EXPECT().FindVoucherByCode(gomock.Any(), "NOPE123").
			Return(nil, infra.WrapRepoErr("voucher not found", nil, infra.KindNotFound))

		result, err := cmds.Redeem(context.Background(), redeemInput("NOPE123"))
		require.NoError(t, err)
		assert.False(t, result.Validation.IsValid())
		assert.Equal(t, promotion.ReasonNotFound, result.Validation.Reason())
		assert.Nil(t, result.Usage)
	})

	t.Run("validation failure stops before any write", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		rec := voucherRecord(t, func(b *builder.VoucherBuilder) { b.Inactive() })

		repo.EXPECT().FindVoucherByCode(gomock.Any(), "SUMMER10").Return(&rec, nil)
		// no AtomicIncrementAndAppendUsage expectation: a call would fail the test

		result, err := cmds.Redeem(context.Background(), redeemInput("SUMMER10"))
		require.NoError(t, err)
		assert.Equal(t, promotion.ReasonInactive, result.Validation.Reason())
	})

	t.Run("losing the usage-limit race maps to UsageLimitReached", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		rec := voucherRecord(t, func(b *builder.VoucherBuilder) { b.WithUsageLimit(1) })

		repo.EXPECT().FindVoucherByCode(gomock.Any(), "SUMMER10").Return(&rec, nil)
		repo.EXPECT().AtomicIncrementAndAppendUsage(gomock.Any(), rec.ID, gomock.Any()).
			Return(infra.WrapRepoErr("usage limit reached", nil, infra.KindLimitReached))

		result, err := cmds.Redeem(context.Background(), redeemInput("SUMMER10"))
		require.NoError(t, err)
		assert.False(t, result.Validation.IsValid())
		assert.Equal(t, promotion.ReasonUsageLimitReached, result.Validation.Reason())
		assert.Nil(t, result.Usage)
	})

	t.Run("repository failure surfaces as a retryable error", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		rec := voucherRecord(t)

		repo.EXPECT().FindVoucherByCode(gomock.Any(), "SUMMER10").Return(&rec, nil)
		repo.EXPECT().AtomicIncrementAndAppendUsage(gomock.Any(), rec.ID, gomock.Any()).
			Return(infra.WrapRepoErr("connection reset", nil))

		result, err := cmds.Redeem(context.Background(), redeemInput("SUMMER10"))
		assert.Nil(t, result)
		assert.ErrorIs(t, err, commands.ErrRepositoryFailure)
	})

	t.Run("per-customer limit consults the ledger", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		rec := voucherRecord(t, func(b *builder.VoucherBuilder) { b.WithPerCustomerLimit(2) })
		input := redeemInput("SUMMER10")

		repo.EXPECT().FindVoucherByCode(gomock.Any(), "SUMMER10").Return(&rec, nil)
		repo.EXPECT().CountCustomerUsage(gomock.Any(), rec.ID, input.CustomerID).Return(2, nil)

		result, err := cmds.Redeem(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, promotion.ReasonCustomerLimitReached, result.Validation.Reason())
	})

	t.Run("anonymous customer skips the ledger count", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		rec := voucherRecord(t, func(b *builder.VoucherBuilder) { b.WithPerCustomerLimit(2) })
		input := redeemInput("SUMMER10")
		input.CustomerID = uuid.Nil

		repo.EXPECT().FindVoucherByCode(gomock.Any(), "SUMMER10").Return(&rec, nil)
		repo.EXPECT().AtomicIncrementAndAppendUsage(gomock.Any(), rec.ID, gomock.Any()).Return(nil)

		result, err := cmds.Redeem(context.Background(), input)
		require.NoError(t, err)
		assert.True(t, result.Validation.IsValid())
	})
}

func TestApplyDiscount(t *testing.T) {
	t.Run("appends the ledger row without touching any cap", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		until := testNow.Add(24 * time.Hour)
		rec := builder.NewDiscountBuilder().
			WithValidity(testNow.Add(-time.Hour), &until).
			WithPercentDiscount(20, nil).
			BuildRecord()

		repo.EXPECT().FindDiscountByID(gomock.Any(), rec.ID).Return(&rec, nil)
		repo.EXPECT().AppendUsage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, usage promotion.UsageRecord) error {
				assert.Equal(t, int64(200), usage.DiscountCents)
				assert.Equal(t, int64(800), usage.FinalCents)
				return nil
			})

		result, err := cmds.ApplyDiscount(context.Background(), commands.ApplyDiscountInput{
			DiscountID: rec.ID,
			CustomerID: uuid.New(),
			OrderID:    uuid.New(),
			Purchase:   promotion.PurchaseContext{AmountCents: 1000},
		})
		require.NoError(t, err)
		assert.True(t, result.Validation.IsValid())
	})

	t.Run("unknown discount id is an invalid result", func(t *testing.T) {
		repo, cmds := newRedeemFixture(t)
		id := uuid.New()
		repo.EXPECT().FindDiscountByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("discount not found", nil, infra.KindNotFound))

		result, err := cmds.ApplyDiscount(context.Background(), commands.ApplyDiscountInput{
			DiscountID: id,
			Purchase:   promotion.PurchaseContext{AmountCents: 1000},
		})
		require.NoError(t, err)
		assert.Equal(t, promotion.ReasonNotFound, result.Validation.Reason())
	})
}
