package promotion

import (
	"time"

	"github.com/google/uuid"
)

// UsageRecord is one row of the append-only redemption ledger. Records are
// never mutated or deleted; per-customer usage counts are derived from them.
type UsageRecord struct {
	ID             uuid.UUID
	PromotionID    uuid.UUID
	CustomerID     uuid.UUID
	OrderID        uuid.UUID
	OriginalCents  int64
	DiscountCents  int64
	FinalCents     int64
	UsedAt         time.Time
}

func NewUsageRecord(promotionID, customerID, orderID uuid.UUID, originalCents, discountCents, finalCents int64, usedAt time.Time) UsageRecord {
	return UsageRecord{
		ID:            uuid.New(),
		PromotionID:   promotionID,
		CustomerID:    customerID,
		OrderID:       orderID,
		OriginalCents: originalCents,
		DiscountCents: discountCents,
		FinalCents:    finalCents,
		UsedAt:        usedAt,
	}
}
