//go:build unit || e2e

package builder

import (
	"time"

	"storefront-console/internal/domain/promotion"
	reqdto "storefront-console/internal/handler/dto/request"

	"github.com/google/uuid"
)

// VoucherBuilder assembles a valid voucher and lets each test mutate the one
// field it cares about.
type VoucherBuilder struct {
	id               uuid.UUID
	code             string
	amountOffCents   *int64
	percentOff       *float64
	maxDiscountCents *int64
	minPurchaseCents int64
	usageLimit       *int
	perCustomerLimit *int
	validFrom        time.Time
	validUntil       *time.Time
	isActive         bool
}

func NewVoucherBuilder() *VoucherBuilder {
	percent := 10.0
	until := time.Now().Add(24 * time.Hour)
	return &VoucherBuilder{
		id:         uuid.New(),
		code:       "SUMMER10",
		percentOff: &percent,
		validFrom:  time.Now().Add(-time.Hour),
		validUntil: &until,
		isActive:   true,
	}
}

func (b *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	b.code = code
	return b
}

func (b *VoucherBuilder) WithFixedDiscount(amountOffCents int64) *VoucherBuilder {
	b.amountOffCents = &amountOffCents
	b.percentOff = nil
	b.maxDiscountCents = nil
	return b
}

func (b *VoucherBuilder) WithPercentDiscount(percentOff float64, maxDiscountCents *int64) *VoucherBuilder {
	b.percentOff = &percentOff
	b.maxDiscountCents = maxDiscountCents
	b.amountOffCents = nil
	return b
}

func (b *VoucherBuilder) WithMinPurchase(cents int64) *VoucherBuilder {
	b.minPurchaseCents = cents
	return b
}

func (b *VoucherBuilder) WithUsageLimit(limit int) *VoucherBuilder {
	b.usageLimit = &limit
	return b
}

func (b *VoucherBuilder) WithPerCustomerLimit(limit int) *VoucherBuilder {
	b.perCustomerLimit = &limit
	return b
}

func (b *VoucherBuilder) WithValidity(from time.Time, until *time.Time) *VoucherBuilder {
	b.validFrom = from
	b.validUntil = until
	return b
}

func (b *VoucherBuilder) Inactive() *VoucherBuilder {
	b.isActive = false
	return b
}

func (b *VoucherBuilder) BuildDomain() (*promotion.Promotion, error) {
	discount, err := b.discount()
	if err != nil {
		return nil, err
	}
	return promotion.NewVoucher(
		b.id, b.code, discount,
		b.minPurchaseCents, b.usageLimit, b.perCustomerLimit,
		b.validFrom, b.validUntil, b.isActive,
	)
}

func (b *VoucherBuilder) BuildRecord() promotion.Record {
	promo, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	rec := promo.ToRecord()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	return rec
}

func (b *VoucherBuilder) BuildCreateRequestDTO() reqdto.CreateVoucherRequest {
	active := b.isActive
	return reqdto.CreateVoucherRequest{
		Code:             b.code,
		AmountOffCents:   b.amountOffCents,
		PercentOff:       b.percentOff,
		MaxDiscountCents: b.maxDiscountCents,
		MinPurchaseCents: b.minPurchaseCents,
		UsageLimit:       b.usageLimit,
		PerCustomerLimit: b.perCustomerLimit,
		ValidFrom:        b.validFrom,
		ValidUntil:       b.validUntil,
		IsActive:         &active,
	}
}

func (b *VoucherBuilder) discount() (promotion.Discount, error) {
	if b.percentOff != nil {
		return promotion.NewPercentDiscount(*b.percentOff, b.maxDiscountCents)
	}
	if b.amountOffCents != nil {
		return promotion.NewFixedDiscount(*b.amountOffCents)
	}
	return promotion.NewPercentDiscount(10, nil)
}

// DiscountBuilder assembles a valid automatic discount.
type DiscountBuilder struct {
	id               uuid.UUID
	amountOffCents   *int64
	percentOff       *float64
	maxDiscountCents *int64
	appliesTo        promotion.AppliesTo
	productIDs       []uuid.UUID
	categoryIDs      []uuid.UUID
	customerClass    *string
	minSpendCents    int64
	validFrom        time.Time
	validUntil       *time.Time
	isActive         bool
}

func NewDiscountBuilder() *DiscountBuilder {
	percent := 20.0
	until := time.Now().Add(24 * time.Hour)
	return &DiscountBuilder{
		id:         uuid.New(),
		percentOff: &percent,
		appliesTo:  promotion.AppliesToAllProducts,
		validFrom:  time.Now().Add(-time.Hour),
		validUntil: &until,
		isActive:   true,
	}
}

func (b *DiscountBuilder) WithFixedDiscount(amountOffCents int64) *DiscountBuilder {
	b.amountOffCents = &amountOffCents
	b.percentOff = nil
	b.maxDiscountCents = nil
	return b
}

func (b *DiscountBuilder) WithPercentDiscount(percentOff float64, maxDiscountCents *int64) *DiscountBuilder {
	b.percentOff = &percentOff
	b.maxDiscountCents = maxDiscountCents
	b.amountOffCents = nil
	return b
}

func (b *DiscountBuilder) WithProducts(ids ...uuid.UUID) *DiscountBuilder {
	b.appliesTo = promotion.AppliesToSpecificProducts
	b.productIDs = ids
	return b
}

func (b *DiscountBuilder) WithCategories(ids ...uuid.UUID) *DiscountBuilder {
	b.appliesTo = promotion.AppliesToSpecificCategories
	b.categoryIDs = ids
	return b
}

func (b *DiscountBuilder) WithCustomerClass(class string) *DiscountBuilder {
	b.customerClass = &class
	return b
}

func (b *DiscountBuilder) WithMinSpend(cents int64) *DiscountBuilder {
	b.minSpendCents = cents
	return b
}

func (b *DiscountBuilder) WithValidity(from time.Time, until *time.Time) *DiscountBuilder {
	b.validFrom = from
	b.validUntil = until
	return b
}

func (b *DiscountBuilder) Inactive() *DiscountBuilder {
	b.isActive = false
	return b
}

func (b *DiscountBuilder) BuildDomain() (*promotion.Promotion, error) {
	var (
		discount promotion.Discount
		err      error
	)
	if b.percentOff != nil {
		discount, err = promotion.NewPercentDiscount(*b.percentOff, b.maxDiscountCents)
	} else {
		discount, err = promotion.NewFixedDiscount(*b.amountOffCents)
	}
	if err != nil {
		return nil, err
	}
	return promotion.NewDiscount(
		b.id, discount,
		b.appliesTo, b.productIDs, b.categoryIDs,
		b.customerClass, b.minSpendCents,
		b.validFrom, b.validUntil, b.isActive,
	)
}

func (b *DiscountBuilder) BuildRecord() promotion.Record {
	promo, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	rec := promo.ToRecord()
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	return rec
}
