package commands

import (
	"context"

	"storefront-console/internal/domain/promotion"

	"github.com/google/uuid"
)

// PromotionRepository is the narrow persistence contract the engine needs.
// AtomicIncrementAndAppendUsage is the only operation with an ordering
// requirement: the conditional increment of usage_count and the ledger
// append must commit or roll back as one unit. Everything else is plain
// read/write.
type PromotionRepository interface {
	FindVoucherByCode(ctx context.Context, code string) (*promotion.Record, error)
	FindDiscountByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error)
	CountCustomerUsage(ctx context.Context, promotionID, customerID uuid.UUID) (int, error)

	// AtomicIncrementAndAppendUsage increments usage_count only while it is
	// below usage_limit and appends the ledger row in the same transaction.
	// A lost race surfaces as KindLimitReached.
	AtomicIncrementAndAppendUsage(ctx context.Context, promotionID uuid.UUID, rec promotion.UsageRecord) error

	// AppendUsage records a redemption for promotions without a global cap.
	AppendUsage(ctx context.Context, rec promotion.UsageRecord) error

	Create(ctx context.Context, rec promotion.Record) error
	Update(ctx context.Context, rec promotion.Record) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error)
}
