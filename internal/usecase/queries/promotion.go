package queries

import (
	"context"
	"time"

	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/infra"
	"storefront-console/internal/pkg/clock"
	"storefront-console/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound = errs.New("promotion not found")
	ErrQueryFailed       = errs.New("promotion query failed")
)

// PromotionView is the flat read model. Status is derived at query time so
// the same row reads as scheduled, active or expired depending on the clock.
type PromotionView struct {
	ID               uuid.UUID
	Kind             promotion.Kind
	Code             string
	AmountOffCents   *int64
	PercentOff       *float64
	MaxDiscountCents *int64
	MinPurchaseCents int64
	UsageLimit       *int
	PerCustomerLimit *int
	UsageCount       int
	AppliesTo        promotion.AppliesTo
	ProductIDs       []uuid.UUID
	CategoryIDs      []uuid.UUID
	CustomerClass    *string
	ValidFrom        time.Time
	ValidUntil       *time.Time
	IsActive         bool
	Status           promotion.Status
	IsExhausted      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type UsageView struct {
	ID            uuid.UUID
	PromotionID   uuid.UUID
	CustomerID    uuid.UUID
	OrderID       uuid.UUID
	OriginalCents int64
	DiscountCents int64
	FinalCents    int64
	UsedAt        time.Time
}

type PreviewInput struct {
	Code       string
	CustomerID uuid.UUID
	Purchase   promotion.PurchaseContext
}

// PreviewResult mirrors the redeem result shape without touching the ledger.
type PreviewResult struct {
	Validation    promotion.ValidationResult
	DiscountCents int64
	FinalCents    int64
}

type PromotionQueries interface {
	// Preview runs the full validation pipeline and discount arithmetic
	// without recording anything. Cart-stage callers poll this; the answer
	// can go stale the moment it is returned.
	Preview(ctx context.Context, input PreviewInput) (*PreviewResult, error)

	GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error)
	GetByCode(ctx context.Context, code string) (*PromotionView, error)
	List(ctx context.Context, filter ListFilter) ([]PromotionView, error)
	ListUsages(ctx context.Context, promotionID uuid.UUID, limit, offset int) ([]UsageView, error)
	GetUsageSummary(ctx context.Context, promotionID uuid.UUID) (*UsageSummary, error)
}

type promotionQueriesImpl struct {
	store PromotionReadStore
	clock clock.Clock
}

func NewPromotionQueries(store PromotionReadStore, clk clock.Clock) PromotionQueries {
	return &promotionQueriesImpl{
		store: store,
		clock: clk,
	}
}

func (q *promotionQueriesImpl) Preview(ctx context.Context, input PreviewInput) (*PreviewResult, error) {
	rec, err := q.store.FindVoucherByCode(ctx, input.Code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &PreviewResult{Validation: promotion.Invalid(promotion.ReasonNotFound)}, nil
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	promo := promotion.Reconstruct(*rec)

	var priorUses *int
	if promo.PerCustomerLimit() != nil && input.CustomerID != uuid.Nil {
		count, err := q.store.CountCustomerUsage(ctx, promo.ID(), input.CustomerID)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		priorUses = &count
	}

	result := promo.Validate(q.clock.Now(), input.Purchase, priorUses)
	if !result.IsValid() {
		return &PreviewResult{Validation: result}, nil
	}

	discountCents, finalCents := promo.CalculateDiscountAmount(input.Purchase.AmountCents)
	return &PreviewResult{
		Validation:    promotion.Valid(),
		DiscountCents: discountCents,
		FinalCents:    finalCents,
	}, nil
}

func (q *promotionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PromotionView, error) {
	rec, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	view := q.toView(*rec)
	return &view, nil
}

func (q *promotionQueriesImpl) GetByCode(ctx context.Context, code string) (*PromotionView, error) {
	rec, err := q.store.FindVoucherByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	view := q.toView(*rec)
	return &view, nil
}

func (q *promotionQueriesImpl) List(ctx context.Context, filter ListFilter) ([]PromotionView, error) {
	recs, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views := make([]PromotionView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, q.toView(rec))
	}
	return views, nil
}

func (q *promotionQueriesImpl) ListUsages(ctx context.Context, promotionID uuid.UUID, limit, offset int) ([]UsageView, error) {
	if _, err := q.store.FindByID(ctx, promotionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	usages, err := q.store.ListUsages(ctx, promotionID, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	views := make([]UsageView, 0, len(usages))
	for _, u := range usages {
		views = append(views, UsageView{
			ID:            u.ID,
			PromotionID:   u.PromotionID,
			CustomerID:    u.CustomerID,
			OrderID:       u.OrderID,
			OriginalCents: u.OriginalCents,
			DiscountCents: u.DiscountCents,
			FinalCents:    u.FinalCents,
			UsedAt:        u.UsedAt,
		})
	}
	return views, nil
}

func (q *promotionQueriesImpl) GetUsageSummary(ctx context.Context, promotionID uuid.UUID) (*UsageSummary, error) {
	summary, err := q.store.UsageSummary(ctx, promotionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return summary, nil
}

func (q *promotionQueriesImpl) toView(rec promotion.Record) PromotionView {
	promo := promotion.Reconstruct(rec)
	return PromotionView{
		ID:               rec.ID,
		Kind:             rec.Kind,
		Code:             rec.Code,
		AmountOffCents:   rec.AmountOffCents,
		PercentOff:       rec.PercentOff,
		MaxDiscountCents: rec.MaxDiscountCents,
		MinPurchaseCents: rec.MinPurchaseCents,
		UsageLimit:       rec.UsageLimit,
		PerCustomerLimit: rec.PerCustomerLimit,
		UsageCount:       rec.UsageCount,
		AppliesTo:        rec.AppliesTo,
		ProductIDs:       rec.ProductIDs,
		CategoryIDs:      rec.CategoryIDs,
		CustomerClass:    rec.CustomerClass,
		ValidFrom:        rec.ValidFrom,
		ValidUntil:       rec.ValidUntil,
		IsActive:         rec.IsActive,
		Status:           promo.Status(q.clock.Now()),
		IsExhausted:      promo.IsExhausted(),
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}
