package queries

import (
	"context"
	"time"

	"storefront-console/internal/domain/promotion"

	"github.com/google/uuid"
)

// PromotionReadStore serves the query side. It returns persistence records;
// view shaping stays in the query layer.
type PromotionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*promotion.Record, error)
	FindVoucherByCode(ctx context.Context, code string) (*promotion.Record, error)
	List(ctx context.Context, filter ListFilter) ([]promotion.Record, error)
	ListUsages(ctx context.Context, promotionID uuid.UUID, limit, offset int) ([]promotion.UsageRecord, error)
	CountCustomerUsage(ctx context.Context, promotionID, customerID uuid.UUID) (int, error)
	UsageSummary(ctx context.Context, promotionID uuid.UUID) (*UsageSummary, error)
}

type ListFilter struct {
	Kind       *promotion.Kind
	ActiveOnly bool
	Limit      int
	Offset     int
}

// UsageSummary aggregates the ledger for one promotion.
type UsageSummary struct {
	PromotionID        uuid.UUID
	RedemptionCount    int
	TotalDiscountCents int64
	TotalOriginalCents int64
	LastUsedAt         *time.Time
}
