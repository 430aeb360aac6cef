package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateVoucherRequest struct {
	Code             string     `json:"code" binding:"required"`
	AmountOffCents   *int64     `json:"amountOffCents"`
	PercentOff       *float64   `json:"percentOff"`
	MaxDiscountCents *int64     `json:"maxDiscountCents"`
	MinPurchaseCents int64      `json:"minPurchaseCents"`
	UsageLimit       *int       `json:"usageLimit"`
	PerCustomerLimit *int       `json:"perCustomerLimit"`
	ValidFrom        time.Time  `json:"validFrom" binding:"required"`
	ValidUntil       *time.Time `json:"validUntil"`
	IsActive         *bool      `json:"isActive"`
}

type CreateDiscountRequest struct {
	AmountOffCents   *int64      `json:"amountOffCents"`
	PercentOff       *float64    `json:"percentOff"`
	MaxDiscountCents *int64      `json:"maxDiscountCents"`
	AppliesTo        string      `json:"appliesTo" binding:"required,oneof=all_products specific_products specific_categories"`
	ProductIDs       []uuid.UUID `json:"productIds"`
	CategoryIDs      []uuid.UUID `json:"categoryIds"`
	CustomerClass    *string     `json:"customerClass"`
	MinSpendCents    int64       `json:"minSpendCents"`
	ValidFrom        time.Time   `json:"validFrom" binding:"required"`
	ValidUntil       *time.Time  `json:"validUntil"`
	IsActive         *bool       `json:"isActive"`
}

type UpdatePromotionRequest struct {
	MinPurchaseCents *int64     `json:"minPurchaseCents"`
	UsageLimit       *int       `json:"usageLimit"`
	PerCustomerLimit *int       `json:"perCustomerLimit"`
	ValidFrom        *time.Time `json:"validFrom"`
	ValidUntil       *time.Time `json:"validUntil"`
	ClearValidUntil  bool       `json:"clearValidUntil"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
