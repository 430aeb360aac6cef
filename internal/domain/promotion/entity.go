package promotion

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidValidityWindow = errors.New("valid_from must not be after valid_until")
	ErrNegativeMinPurchase   = errors.New("minimum purchase amount cannot be negative")
	ErrInvalidUsageLimit     = errors.New("usage limit must be positive when set")
	ErrVoucherCodeRequired   = errors.New("voucher requires a code")
)

// Promotion is the sum of the two variants. Voucher-only fields: code,
// usageLimit, perCustomerLimit, usageCount. Discount-only fields: appliesTo
// with its id sets. Both share the validity window, the admin toggle, the
// eligibility rule and the discount arithmetic.
type Promotion struct {
	id               uuid.UUID
	kind             Kind
	code             Code
	discount         Discount
	minPurchaseCents int64
	usageLimit       *int
	perCustomerLimit *int
	usageCount       int
	appliesTo        AppliesTo
	productIDs       map[uuid.UUID]struct{}
	categoryIDs      map[uuid.UUID]struct{}
	customerClass    *string
	validFrom        time.Time
	validUntil       *time.Time
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewVoucher(
	id uuid.UUID,
	code string,
	discount Discount,
	minPurchaseCents int64,
	usageLimit, perCustomerLimit *int,
	validFrom time.Time,
	validUntil *time.Time,
	isActive bool,
) (*Promotion, error) {
	voucherCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	p := &Promotion{
		id:               id,
		kind:             KindVoucher,
		code:             voucherCode,
		discount:         discount,
		minPurchaseCents: minPurchaseCents,
		usageLimit:       usageLimit,
		perCustomerLimit: perCustomerLimit,
		appliesTo:        AppliesToAllProducts,
		validFrom:        validFrom,
		validUntil:       validUntil,
		isActive:         isActive,
	}
	if err := p.checkInvariants(); err != nil {
		return nil, err
	}
	return p, nil
}

func NewDiscount(
	id uuid.UUID,
	discount Discount,
	appliesTo AppliesTo,
	productIDs, categoryIDs []uuid.UUID,
	customerClass *string,
	minSpendCents int64,
	validFrom time.Time,
	validUntil *time.Time,
	isActive bool,
) (*Promotion, error) {
	p := &Promotion{
		id:               id,
		kind:             KindDiscount,
		discount:         discount,
		minPurchaseCents: minSpendCents,
		appliesTo:        appliesTo,
		productIDs:       toIDSet(productIDs),
		categoryIDs:      toIDSet(categoryIDs),
		customerClass:    customerClass,
		validFrom:        validFrom,
		validUntil:       validUntil,
		isActive:         isActive,
	}
	if err := p.checkInvariants(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Promotion) checkInvariants() error {
	if p.validUntil != nil && p.validFrom.After(*p.validUntil) {
		return ErrInvalidValidityWindow
	}
	if p.minPurchaseCents < 0 {
		return ErrNegativeMinPurchase
	}
	if p.usageLimit != nil && *p.usageLimit <= 0 {
		return ErrInvalidUsageLimit
	}
	if p.perCustomerLimit != nil && *p.perCustomerLimit <= 0 {
		return ErrInvalidUsageLimit
	}
	if p.kind == KindVoucher && p.code == "" {
		return ErrVoucherCodeRequired
	}
	return nil
}

// Record is the flat persistence shape of a Promotion. Repositories build
// domain objects from rows through Reconstruct and never touch the
// unexported fields directly.
type Record struct {
	ID               uuid.UUID
	Kind             Kind
	Code             string
	AmountOffCents   *int64
	PercentOff       *float64
	MaxDiscountCents *int64
	MinPurchaseCents int64
	UsageLimit       *int
	PerCustomerLimit *int
	UsageCount       int
	AppliesTo        AppliesTo
	ProductIDs       []uuid.UUID
	CategoryIDs      []uuid.UUID
	CustomerClass    *string
	ValidFrom        time.Time
	ValidUntil       *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reconstruct rebuilds a Promotion from persistence. Rows are trusted; the
// constructors validate on the way in.
func Reconstruct(rec Record) *Promotion {
	var discount Discount
	if rec.PercentOff != nil {
		discount = Discount{percentOff: rec.PercentOff, maxDiscountCents: rec.MaxDiscountCents}
	} else if rec.AmountOffCents != nil {
		discount = Discount{amountOffCents: rec.AmountOffCents}
	}

	appliesTo := rec.AppliesTo
	if appliesTo == "" {
		appliesTo = AppliesToAllProducts
	}

	return &Promotion{
		id:               rec.ID,
		kind:             rec.Kind,
		code:             Code(rec.Code),
		discount:         discount,
		minPurchaseCents: rec.MinPurchaseCents,
		usageLimit:       rec.UsageLimit,
		perCustomerLimit: rec.PerCustomerLimit,
		usageCount:       rec.UsageCount,
		appliesTo:        appliesTo,
		productIDs:       toIDSet(rec.ProductIDs),
		categoryIDs:      toIDSet(rec.CategoryIDs),
		customerClass:    rec.CustomerClass,
		validFrom:        rec.ValidFrom,
		validUntil:       rec.ValidUntil,
		isActive:         rec.IsActive,
		createdAt:        rec.CreatedAt,
		updatedAt:        rec.UpdatedAt,
	}
}

// ToRecord flattens the promotion for persistence.
func (p *Promotion) ToRecord() Record {
	rec := Record{
		ID:               p.id,
		Kind:             p.kind,
		Code:             p.code.String(),
		MinPurchaseCents: p.minPurchaseCents,
		UsageLimit:       p.usageLimit,
		PerCustomerLimit: p.perCustomerLimit,
		UsageCount:       p.usageCount,
		AppliesTo:        p.appliesTo,
		ProductIDs:       fromIDSet(p.productIDs),
		CategoryIDs:      fromIDSet(p.categoryIDs),
		CustomerClass:    p.customerClass,
		ValidFrom:        p.validFrom,
		ValidUntil:       p.validUntil,
		IsActive:         p.isActive,
		CreatedAt:        p.createdAt,
		UpdatedAt:        p.updatedAt,
	}
	if p.discount.IsPercentage() {
		pct := p.discount.PercentOff()
		rec.PercentOff = &pct
		rec.MaxDiscountCents = p.discount.MaxDiscountCents()
	} else if p.discount.IsFixed() {
		amount := p.discount.AmountOffCents()
		rec.AmountOffCents = &amount
	}
	return rec
}

// Validate runs the eligibility checks in presentation order, stopping at
// the first failure. The order matters for user-facing messaging, not for
// correctness. priorCustomerUses is nil when no customer is identified.
//
// The result is advisory only: the global cap is re-checked atomically by
// the repository when usage is recorded.
func (p *Promotion) Validate(now time.Time, purchase PurchaseContext, priorCustomerUses *int) ValidationResult {
	if !p.isActive {
		return Invalid(ReasonInactive)
	}
	if now.Before(p.validFrom) {
		return Invalid(ReasonNotYetValid)
	}
	if p.validUntil != nil && now.After(*p.validUntil) {
		return Invalid(ReasonExpired)
	}
	// Global cap is a voucher-only rule; discounts have none in the current
	// schema.
	if p.kind == KindVoucher && p.usageLimit != nil && p.usageCount >= *p.usageLimit {
		return Invalid(ReasonUsageLimitReached)
	}
	if purchase.AmountCents < p.minPurchaseCents {
		return Invalid(ReasonBelowMinimumPurchase)
	}
	if p.customerClass != nil && *p.customerClass != purchase.CustomerClass {
		return Invalid(ReasonIneligible)
	}
	if p.kind == KindDiscount && !p.appliesToPurchase(purchase) {
		return Invalid(ReasonNotApplicable)
	}
	if p.kind == KindVoucher && p.perCustomerLimit != nil && priorCustomerUses != nil &&
		*priorCustomerUses >= *p.perCustomerLimit {
		return Invalid(ReasonCustomerLimitReached)
	}
	return Valid()
}

func (p *Promotion) appliesToPurchase(purchase PurchaseContext) bool {
	switch p.appliesTo {
	case AppliesToAllProducts:
		return true
	case AppliesToSpecificProducts:
		for _, id := range purchase.ProductIDs {
			if _, ok := p.productIDs[id]; ok {
				return true
			}
		}
	case AppliesToSpecificCategories:
		for _, id := range purchase.CategoryIDs {
			if _, ok := p.categoryIDs[id]; ok {
				return true
			}
		}
	}
	return false
}

// CalculateDiscountAmount is pure and total; callers must have validated
// the promotion first.
func (p *Promotion) CalculateDiscountAmount(originalCents int64) (discountCents, finalCents int64) {
	return p.discount.Apply(originalCents)
}

// Status derives the lifecycle stage from the clock and the admin toggle.
func (p *Promotion) Status(now time.Time) Status {
	if !p.isActive {
		return StatusSuspended
	}
	if now.Before(p.validFrom) {
		return StatusScheduled
	}
	if p.validUntil != nil && now.After(*p.validUntil) {
		return StatusExpired
	}
	return StatusActive
}

// IsExhausted reports whether the voucher's global cap is used up. A
// property, not a stored state: raising the limit reopens redemption.
func (p *Promotion) IsExhausted() bool {
	return p.kind == KindVoucher && p.usageLimit != nil && p.usageCount >= *p.usageLimit
}

func (p *Promotion) ID() uuid.UUID          { return p.id }
func (p *Promotion) Kind() Kind             { return p.kind }
func (p *Promotion) Code() Code             { return p.code }
func (p *Promotion) Discount() Discount     { return p.discount }
func (p *Promotion) MinPurchaseCents() int64 { return p.minPurchaseCents }
func (p *Promotion) UsageLimit() *int       { return p.usageLimit }
func (p *Promotion) PerCustomerLimit() *int { return p.perCustomerLimit }
func (p *Promotion) UsageCount() int        { return p.usageCount }
func (p *Promotion) AppliesTo() AppliesTo   { return p.appliesTo }
func (p *Promotion) CustomerClass() *string { return p.customerClass }
func (p *Promotion) ValidFrom() time.Time   { return p.validFrom }
func (p *Promotion) ValidUntil() *time.Time { return p.validUntil }
func (p *Promotion) IsActive() bool         { return p.isActive }
func (p *Promotion) CreatedAt() time.Time   { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time   { return p.updatedAt }

func toIDSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func fromIDSet(set map[uuid.UUID]struct{}) []uuid.UUID {
	if len(set) == 0 {
		return nil
	}
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
