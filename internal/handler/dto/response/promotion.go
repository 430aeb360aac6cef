package response

import (
	"time"

	"storefront-console/internal/domain/promotion"
	"storefront-console/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PromotionResponse struct {
	ID               string      `json:"id"`
	Kind             string      `json:"kind"`
	Code             string      `json:"code,omitempty"`
	AmountOffCents   *int64      `json:"amountOffCents,omitempty"`
	PercentOff       *float64    `json:"percentOff,omitempty"`
	MaxDiscountCents *int64      `json:"maxDiscountCents,omitempty"`
	MinPurchaseCents int64       `json:"minPurchaseCents"`
	UsageLimit       *int        `json:"usageLimit,omitempty"`
	PerCustomerLimit *int        `json:"perCustomerLimit,omitempty"`
	UsageCount       int         `json:"usageCount"`
	AppliesTo        string      `json:"appliesTo"`
	ProductIDs       []string    `json:"productIds,omitempty"`
	CategoryIDs      []string    `json:"categoryIds,omitempty"`
	CustomerClass    *string     `json:"customerClass,omitempty"`
	ValidFrom        time.Time   `json:"validFrom"`
	ValidUntil       *time.Time  `json:"validUntil,omitempty"`
	IsActive         bool        `json:"isActive"`
	Status           string      `json:"status"`
	IsExhausted      bool        `json:"isExhausted"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func FromPromotionView(view *queries.PromotionView) *PromotionResponse {
	resp := &PromotionResponse{}
	_ = copier.Copy(resp, view)
	resp.ID = view.ID.String()
	resp.Kind = string(view.Kind)
	resp.AppliesTo = string(view.AppliesTo)
	resp.Status = string(view.Status)
	for _, id := range view.ProductIDs {
		resp.ProductIDs = append(resp.ProductIDs, id.String())
	}
	for _, id := range view.CategoryIDs {
		resp.CategoryIDs = append(resp.CategoryIDs, id.String())
	}
	return resp
}

func FromPromotionList(views []queries.PromotionView) []PromotionResponse {
	out := make([]PromotionResponse, 0, len(views))
	for i := range views {
		out = append(out, *FromPromotionView(&views[i]))
	}
	return out
}

type RedeemResponse struct {
	Valid         bool    `json:"valid"`
	Reason        *string `json:"reason,omitempty"`
	UsageID       *string `json:"usageId,omitempty"`
	DiscountCents *int64  `json:"discountCents,omitempty"`
	FinalCents    *int64  `json:"finalCents,omitempty"`
}

func FromRedeemResult(result *promotion.ValidationResult, usage *promotion.UsageRecord) *RedeemResponse {
	resp := &RedeemResponse{Valid: result.IsValid()}
	if !result.IsValid() {
		reason := string(result.Reason())
		resp.Reason = &reason
		return resp
	}
	if usage != nil {
		id := usage.ID.String()
		resp.UsageID = &id
		resp.DiscountCents = &usage.DiscountCents
		resp.FinalCents = &usage.FinalCents
	}
	return resp
}

type PreviewResponse struct {
	Valid         bool    `json:"valid"`
	Reason        *string `json:"reason,omitempty"`
	DiscountCents *int64  `json:"discountCents,omitempty"`
	FinalCents    *int64  `json:"finalCents,omitempty"`
}

func FromPreviewResult(result *queries.PreviewResult) *PreviewResponse {
	resp := &PreviewResponse{Valid: result.Validation.IsValid()}
	if !result.Validation.IsValid() {
		reason := string(result.Validation.Reason())
		resp.Reason = &reason
		return resp
	}
	resp.DiscountCents = &result.DiscountCents
	resp.FinalCents = &result.FinalCents
	return resp
}

type UsageResponse struct {
	ID            string    `json:"id"`
	PromotionID   string    `json:"promotionId"`
	CustomerID    string    `json:"customerId"`
	OrderID       string    `json:"orderId"`
	OriginalCents int64     `json:"originalCents"`
	DiscountCents int64     `json:"discountCents"`
	FinalCents    int64     `json:"finalCents"`
	UsedAt        time.Time `json:"usedAt"`
}

func FromUsageViews(views []queries.UsageView) []UsageResponse {
	out := make([]UsageResponse, 0, len(views))
	for _, v := range views {
		item := UsageResponse{}
		_ = copier.Copy(&item, &v)
		item.ID = v.ID.String()
		item.PromotionID = v.PromotionID.String()
		item.CustomerID = v.CustomerID.String()
		item.OrderID = v.OrderID.String()
		out = append(out, item)
	}
	return out
}

type UsageSummaryResponse struct {
	PromotionID        string     `json:"promotionId"`
	RedemptionCount    int        `json:"redemptionCount"`
	TotalDiscountCents int64      `json:"totalDiscountCents"`
	TotalOriginalCents int64      `json:"totalOriginalCents"`
	LastUsedAt         *time.Time `json:"lastUsedAt,omitempty"`
}

func FromUsageSummary(summary *queries.UsageSummary) *UsageSummaryResponse {
	return &UsageSummaryResponse{
		PromotionID:        summary.PromotionID.String(),
		RedemptionCount:    summary.RedemptionCount,
		TotalDiscountCents: summary.TotalDiscountCents,
		TotalOriginalCents: summary.TotalOriginalCents,
		LastUsedAt:         summary.LastUsedAt,
	}
}

type PermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
