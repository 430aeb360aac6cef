package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront-console/internal/domain/authority"
	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/infra"
	"storefront-console/internal/pkg/clock"
	"storefront-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPermissionDenied  = errs.New("permission denied")
	ErrPromotionNotFound = errs.New("promotion not found")
	ErrDuplicateCode     = errs.New("voucher code already exists")
	ErrDomainValidation  = errs.New("domain validation error")
)

type CreateVoucherInput struct {
	Code             string
	AmountOffCents   *int64
	PercentOff       *float64
	MaxDiscountCents *int64
	MinPurchaseCents int64
	UsageLimit       *int
	PerCustomerLimit *int
	ValidFrom        time.Time
	ValidUntil       *time.Time
	IsActive         bool
}

type CreateDiscountInput struct {
	AmountOffCents   *int64
	PercentOff       *float64
	MaxDiscountCents *int64
	AppliesTo        promotion.AppliesTo
	ProductIDs       []uuid.UUID
	CategoryIDs      []uuid.UUID
	CustomerClass    *string
	MinSpendCents    int64
	ValidFrom        time.Time
	ValidUntil       *time.Time
	IsActive         bool
}

// UpdatePromotionInput is a partial update; nil fields are left untouched.
// Raising UsageLimit on an exhausted voucher reopens redemption with no
// separate state transition.
type UpdatePromotionInput struct {
	MinPurchaseCents *int64
	UsageLimit       *int
	PerCustomerLimit *int
	ValidFrom        *time.Time
	ValidUntil       *time.Time
	ClearValidUntil  bool
}

type AdminCommands interface {
	CreateVoucher(ctx context.Context, actor authority.Role, input CreateVoucherInput) (uuid.UUID, error)
	CreateDiscount(ctx context.Context, actor authority.Role, input CreateDiscountInput) (uuid.UUID, error)
	Update(ctx context.Context, actor authority.Role, id uuid.UUID, input UpdatePromotionInput) error
	SetActive(ctx context.Context, actor authority.Role, id uuid.UUID, active bool) error
	Delete(ctx context.Context, actor authority.Role, id uuid.UUID) error
}

type adminCommandsImpl struct {
	repo  PromotionRepository
	auth  *authority.Authority
	clock clock.Clock
}

func NewAdminCommands(repo PromotionRepository, auth *authority.Authority, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		repo:  repo,
		auth:  auth,
		clock: clk,
	}
}

func (a *adminCommandsImpl) CreateVoucher(ctx context.Context, actor authority.Role, input CreateVoucherInput) (uuid.UUID, error) {
	if !a.auth.HasPermission(actor, authority.PermPromoCreate) {
		return uuid.Nil, ErrPermissionDenied
	}

	discount, err := newDiscountValue(input.AmountOffCents, input.PercentOff, input.MaxDiscountCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	promo, err := promotion.NewVoucher(
		uuid.New(), input.Code, discount,
		input.MinPurchaseCents, input.UsageLimit, input.PerCustomerLimit,
		input.ValidFrom, input.ValidUntil, input.IsActive,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	rec := promo.ToRecord()
	rec.CreatedAt = a.clock.Now()
	rec.UpdatedAt = rec.CreatedAt
	if err := a.repo.Create(ctx, rec); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCode
		}
		return uuid.Nil, errs.Mark(err, ErrRepositoryFailure)
	}

	slog.Info("voucher created", "promotion_id", promo.ID().String(), "code", promo.Code().String())
	return promo.ID(), nil
}

func (a *adminCommandsImpl) CreateDiscount(ctx context.Context, actor authority.Role, input CreateDiscountInput) (uuid.UUID, error) {
	if !a.auth.HasPermission(actor, authority.PermPromoCreate) {
		return uuid.Nil, ErrPermissionDenied
	}

	discount, err := newDiscountValue(input.AmountOffCents, input.PercentOff, input.MaxDiscountCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	promo, err := promotion.NewDiscount(
		uuid.New(), discount,
		input.AppliesTo, input.ProductIDs, input.CategoryIDs,
		input.CustomerClass, input.MinSpendCents,
		input.ValidFrom, input.ValidUntil, input.IsActive,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	rec := promo.ToRecord()
	rec.CreatedAt = a.clock.Now()
	rec.UpdatedAt = rec.CreatedAt
	if err := a.repo.Create(ctx, rec); err != nil {
		return uuid.Nil, errs.Mark(err, ErrRepositoryFailure)
	}

	slog.Info("discount created", "promotion_id", promo.ID().String())
	return promo.ID(), nil
}

func (a *adminCommandsImpl) Update(ctx context.Context, actor authority.Role, id uuid.UUID, input UpdatePromotionInput) error {
	if !a.auth.HasPermission(actor, authority.PermPromoEdit) {
		return ErrPermissionDenied
	}

	rec, err := a.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromotionNotFound
		}
		return errs.Mark(err, ErrRepositoryFailure)
	}

	if input.MinPurchaseCents != nil {
		rec.MinPurchaseCents = *input.MinPurchaseCents
	}
	if input.UsageLimit != nil {
		rec.UsageLimit = input.UsageLimit
	}
	if input.PerCustomerLimit != nil {
		rec.PerCustomerLimit = input.PerCustomerLimit
	}
	if input.ValidFrom != nil {
		rec.ValidFrom = *input.ValidFrom
	}
	if input.ClearValidUntil {
		rec.ValidUntil = nil
	} else if input.ValidUntil != nil {
		rec.ValidUntil = input.ValidUntil
	}

	if rec.ValidUntil != nil && rec.ValidFrom.After(*rec.ValidUntil) {
		return errs.Mark(promotion.ErrInvalidValidityWindow, ErrDomainValidation)
	}
	if rec.MinPurchaseCents < 0 {
		return errs.Mark(promotion.ErrNegativeMinPurchase, ErrDomainValidation)
	}
	rec.UpdatedAt = a.clock.Now()

	if err := a.repo.Update(ctx, *rec); err != nil {
		return errs.Mark(err, ErrRepositoryFailure)
	}
	return nil
}

func (a *adminCommandsImpl) SetActive(ctx context.Context, actor authority.Role, id uuid.UUID, active bool) error {
	if !a.auth.HasPermission(actor, authority.PermPromoEdit) {
		return ErrPermissionDenied
	}

	if err := a.repo.SetActive(ctx, id, active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromotionNotFound
		}
		return errs.Mark(err, ErrRepositoryFailure)
	}
	return nil
}

func (a *adminCommandsImpl) Delete(ctx context.Context, actor authority.Role, id uuid.UUID) error {
	if !a.auth.HasPermission(actor, authority.PermPromoDelete) {
		return ErrPermissionDenied
	}

	if err := a.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromotionNotFound
		}
		return errs.Mark(err, ErrRepositoryFailure)
	}
	return nil
}

var errDiscountValueRequired = errs.New("either amount_off_cents or percent_off is required")

func newDiscountValue(amountOffCents *int64, percentOff *float64, maxDiscountCents *int64) (promotion.Discount, error) {
	switch {
	case percentOff != nil:
		return promotion.NewPercentDiscount(*percentOff, maxDiscountCents)
	case amountOffCents != nil:
		if maxDiscountCents != nil {
			return promotion.Discount{}, promotion.ErrMaxDiscountOnFixed
		}
		return promotion.NewFixedDiscount(*amountOffCents)
	default:
		return promotion.Discount{}, errDiscountValueRequired
	}
}
