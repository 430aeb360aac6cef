package commands

import (
	"context"
	"log/slog"

	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/infra"
	"storefront-console/internal/pkg/clock"
	"storefront-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRepositoryFailure = errs.New("promotion repository failure")
)

type RedeemInput struct {
	Code       string
	CustomerID uuid.UUID
	OrderID    uuid.UUID
	Purchase   promotion.PurchaseContext
}

type ApplyDiscountInput struct {
	DiscountID uuid.UUID
	CustomerID uuid.UUID
	OrderID    uuid.UUID
	Purchase   promotion.PurchaseContext
}

// RedeemResult carries either a recorded usage or the reason the promotion
// could not be applied. Validation failure is a result, not an error;
// errors are reserved for infrastructure failure, which is safe to retry.
type RedeemResult struct {
	Validation promotion.ValidationResult
	Usage      *promotion.UsageRecord
}

type PromotionCommands interface {
	// Redeem validates a voucher for a confirmed order and records the
	// usage exactly once. A concurrent redemption consuming the last slot
	// between validation and recording yields UsageLimitReached, never an
	// over-limit record.
	Redeem(ctx context.Context, input RedeemInput) (*RedeemResult, error)

	// ApplyDiscount does the same for the discount variant, which has no
	// global cap: only the ledger row is appended.
	ApplyDiscount(ctx context.Context, input ApplyDiscountInput) (*RedeemResult, error)
}

type promotionCommandsImpl struct {
	repo  PromotionRepository
	clock clock.Clock
}

func NewPromotionCommands(repo PromotionRepository, clk clock.Clock) PromotionCommands {
	return &promotionCommandsImpl{
		repo:  repo,
		clock: clk,
	}
}

func (p *promotionCommandsImpl) Redeem(ctx context.Context, input RedeemInput) (*RedeemResult, error) {
	rec, err := p.repo.FindVoucherByCode(ctx, input.Code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &RedeemResult{Validation: promotion.Invalid(promotion.ReasonNotFound)}, nil
		}
		return nil, errs.Mark(err, ErrRepositoryFailure)
	}
	promo := promotion.Reconstruct(*rec)

	priorUses, err := p.customerUses(ctx, promo, input.CustomerID)
	if err != nil {
		return nil, errs.Mark(err, ErrRepositoryFailure)
	}

	result := promo.Validate(p.clock.Now(), input.Purchase, priorUses)
	if !result.IsValid() {
		return &RedeemResult{Validation: result}, nil
	}

	discountCents, finalCents := promo.CalculateDiscountAmount(input.Purchase.AmountCents)
	usage := promotion.NewUsageRecord(
		promo.ID(), input.CustomerID, input.OrderID,
		input.Purchase.AmountCents, discountCents, finalCents,
		p.clock.Now(),
	)

	// Validate above is advisory; the conditional increment here is the
	// sole authority for usage_count <= usage_limit.
	if err := p.repo.AtomicIncrementAndAppendUsage(ctx, promo.ID(), usage); err != nil {
		if infra.IsKind(err, infra.KindLimitReached) {
			slog.Info("redemption lost usage-limit race",
				"promotion_id", promo.ID().String(),
				"order_id", input.OrderID.String())
			return &RedeemResult{Validation: promotion.Invalid(promotion.ReasonUsageLimitReached)}, nil
		}
		return nil, errs.Mark(err, ErrRepositoryFailure)
	}

	return &RedeemResult{Validation: promotion.Valid(), Usage: &usage}, nil
}

func (p *promotionCommandsImpl) ApplyDiscount(ctx context.Context, input ApplyDiscountInput) (*RedeemResult, error) {
	rec, err := p.repo.FindDiscountByID(ctx, input.DiscountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &RedeemResult{Validation: promotion.Invalid(promotion.ReasonNotFound)}, nil
		}
		return nil, errs.Mark(err, ErrRepositoryFailure)
	}
	promo := promotion.Reconstruct(*rec)

	result := promo.Validate(p.clock.Now(), input.Purchase, nil)
	if !result.IsValid() {
		return &RedeemResult{Validation: result}, nil
	}

	discountCents, finalCents := promo.CalculateDiscountAmount(input.Purchase.AmountCents)
	usage := promotion.NewUsageRecord(
		promo.ID(), input.CustomerID, input.OrderID,
		input.Purchase.AmountCents, discountCents, finalCents,
		p.clock.Now(),
	)

	if err := p.repo.AppendUsage(ctx, usage); err != nil {
		return nil, errs.Mark(err, ErrRepositoryFailure)
	}

	return &RedeemResult{Validation: promotion.Valid(), Usage: &usage}, nil
}

// customerUses counts prior redemptions only when the voucher actually
// carries a per-customer limit and a customer is identified.
func (p *promotionCommandsImpl) customerUses(ctx context.Context, promo *promotion.Promotion, customerID uuid.UUID) (*int, error) {
	if promo.PerCustomerLimit() == nil || customerID == uuid.Nil {
		return nil, nil
	}
	count, err := p.repo.CountCustomerUsage(ctx, promo.ID(), customerID)
	if err != nil {
		return nil, err
	}
	return &count, nil
}
