package request

import (
	"storefront-console/internal/domain/promotion"

	"github.com/google/uuid"
)

type RedeemRequest struct {
	Code          string      `json:"code" binding:"required"`
	OrderID       uuid.UUID   `json:"orderId" binding:"required"`
	AmountCents   int64       `json:"amountCents" binding:"required,gte=0"`
	ProductIDs    []uuid.UUID `json:"productIds"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
	CustomerClass string      `json:"customerClass"`
}

type PreviewRequest struct {
	Code          string      `json:"code" binding:"required"`
	AmountCents   int64       `json:"amountCents" binding:"required,gte=0"`
	ProductIDs    []uuid.UUID `json:"productIds"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
	CustomerClass string      `json:"customerClass"`
}

type ApplyDiscountRequest struct {
	DiscountID    uuid.UUID   `json:"discountId" binding:"required"`
	OrderID       uuid.UUID   `json:"orderId" binding:"required"`
	AmountCents   int64       `json:"amountCents" binding:"required,gte=0"`
	ProductIDs    []uuid.UUID `json:"productIds"`
	CategoryIDs   []uuid.UUID `json:"categoryIds"`
	CustomerClass string      `json:"customerClass"`
}

func (r RedeemRequest) Purchase() promotion.PurchaseContext {
	return promotion.PurchaseContext{
		AmountCents:   r.AmountCents,
		ProductIDs:    r.ProductIDs,
		CategoryIDs:   r.CategoryIDs,
		CustomerClass: r.CustomerClass,
	}
}

func (r PreviewRequest) Purchase() promotion.PurchaseContext {
	return promotion.PurchaseContext{
		AmountCents:   r.AmountCents,
		ProductIDs:    r.ProductIDs,
		CategoryIDs:   r.CategoryIDs,
		CustomerClass: r.CustomerClass,
	}
}

func (r ApplyDiscountRequest) Purchase() promotion.PurchaseContext {
	return promotion.PurchaseContext{
		AmountCents:   r.AmountCents,
		ProductIDs:    r.ProductIDs,
		CategoryIDs:   r.CategoryIDs,
		CustomerClass: r.CustomerClass,
	}
}
