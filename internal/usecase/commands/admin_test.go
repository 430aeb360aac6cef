//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront-console/internal/domain/authority"
	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/infra"
	"storefront-console/internal/pkg/clock"
	"storefront-console/internal/usecase/commands"
	commandsmock "storefront-console/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAdminFixture(t *testing.T) (*commandsmock.MockPromotionRepository, commands.AdminCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockPromotionRepository(ctrl)
	cmds := commands.NewAdminCommands(repo, authority.NewDefault(), clock.NewMockClock(testNow))
	return repo, cmds
}

func createVoucherInput() commands.CreateVoucherInput {
	percent := 10.0
	until := testNow.Add(24 * time.Hour)
	return commands.CreateVoucherInput{
		Code:       "WELCOME5",
		PercentOff: &percent,
		ValidFrom:  testNow,
		ValidUntil: &until,
		IsActive:   true,
	}
}

func TestCreateVoucher(t *testing.T) {
	t.Run("manager may create and timestamps come from the clock", func(t *testing.T) {
		repo, cmds := newAdminFixture(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec promotion.Record) error {
				assert.Equal(t, promotion.KindVoucher, rec.Kind)
				assert.Equal(t, "WELCOME5", rec.Code)
				assert.Equal(t, testNow, rec.CreatedAt)
				assert.Equal(t, testNow, rec.UpdatedAt)
				return nil
			})

		id, err := cmds.CreateVoucher(context.Background(), authority.RoleManager, createVoucherInput())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("employee is denied before any repository call", func(t *testing.T) {
		_, cmds := newAdminFixture(t)

		_, err := cmds.CreateVoucher(context.Background(), authority.RoleEmployee, createVoucherInput())
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("unknown role is denied", func(t *testing.T) {
		_, cmds := newAdminFixture(t)

		_, err := cmds.CreateVoucher(context.Background(), authority.Role("superuser"), createVoucherInput())
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("duplicate code maps to ErrDuplicateCode", func(t *testing.T) {
		repo, cmds := newAdminFixture(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("promotion code already exists", nil, infra.KindDuplicateKey))

		_, err := cmds.CreateVoucher(context.Background(), authority.RoleAdmin, createVoucherInput())
		assert.ErrorIs(t, err, commands.ErrDuplicateCode)
	})

	t.Run("domain invariants reject bad input", func(t *testing.T) {
		_, cmds := newAdminFixture(t)

		input := createVoucherInput()
		input.Code = "bad code"
		_, err := cmds.CreateVoucher(context.Background(), authority.RoleAdmin, input)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)

		input = createVoucherInput()
		input.PercentOff = nil
		_, err = cmds.CreateVoucher(context.Background(), authority.RoleAdmin, input)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)

		input = createVoucherInput()
		cap := int64(100)
		amount := int64(500)
		input.PercentOff = nil
		input.AmountOffCents = &amount
		input.MaxDiscountCents = &cap
		_, err = cmds.CreateVoucher(context.Background(), authority.RoleAdmin, input)
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestUpdatePromotion(t *testing.T) {
	t.Run("merges partial input over the stored record", func(t *testing.T) {
		repo, cmds := newAdminFixture(t)
		id := uuid.New()
		existing := promotion.Record{
			ID:               id,
			Kind:             promotion.KindVoucher,
			Code:             "WELCOME5",
			MinPurchaseCents: 1000,
			ValidFrom:        testNow.Add(-time.Hour),
			IsActive:         true,
		}
		newLimit := 50

		repo.EXPECT().FindByID(gomock.Any(), id).Return(&existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec promotion.Record) error {
				assert.Equal(t, int64(1000), rec.MinPurchaseCents)
				require.NotNil(t, rec.UsageLimit)
				assert.Equal(t, newLimit, *rec.UsageLimit)
				assert.Equal(t, testNow, rec.UpdatedAt)
				return nil
			})

		err := cmds.Update(context.Background(), authority.RoleManager, id, commands.UpdatePromotionInput{
			UsageLimit: &newLimit,
		})
		require.NoError(t, err)
	})

	t.Run("rejects a window that inverts after merge", func(t *testing.T) {
		repo, cmds := newAdminFixture(t)
		id := uuid.New()
		until := testNow.Add(time.Hour)
		existing := promotion.Record{
			ID:         id,
			Kind:       promotion.KindVoucher,
			Code:       "WELCOME5",
			ValidFrom:  testNow.Add(-time.Hour),
			ValidUntil: &until,
			IsActive:   true,
		}
		lateStart := testNow.Add(2 * time.Hour)

		repo.EXPECT().FindByID(gomock.Any(), id).Return(&existing, nil)

		err := cmds.Update(context.Background(), authority.RoleAdmin, id, commands.UpdatePromotionInput{
			ValidFrom: &lateStart,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("missing promotion maps to ErrPromotionNotFound", func(t *testing.T) {
		repo, cmds := newAdminFixture(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("promotion not found", nil, infra.KindNotFound))

		err := cmds.Update(context.Background(), authority.RoleAdmin, id, commands.UpdatePromotionInput{})
		assert.ErrorIs(t, err, commands.ErrPromotionNotFound)
	})
}

func TestDeletePromotion(t *testing.T) {
	t.Run("only admin holds promo:delete", func(t *testing.T) {
		_, cmds := newAdminFixture(t)

		err := cmds.Delete(context.Background(), authority.RoleManager, uuid.New())
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)

		err = cmds.Delete(context.Background(), authority.RoleEmployee, uuid.New())
		assert.ErrorIs(t, err, commands.ErrPermissionDenied)
	})

	t.Run("admin delete reaches the repository", func(t *testing.T) {
		repo, cmds := newAdminFixture(t)
		id := uuid.New()
		repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

		require.NoError(t, cmds.Delete(context.Background(), authority.RoleAdmin, id))
	})
}

func TestSetActive(t *testing.T) {
	repo, cmds := newAdminFixture(t)
	id := uuid.New()
	repo.EXPECT().SetActive(gomock.Any(), id, false).Return(nil)

	require.NoError(t, cmds.SetActive(context.Background(), authority.RoleManager, id, false))

	err := cmds.SetActive(context.Background(), authority.RoleEmployee, id, true)
	assert.ErrorIs(t, err, commands.ErrPermissionDenied)
}
