package promotion

import "github.com/google/uuid"

// Kind discriminates the two promotion variants. Vouchers are code-redeemed
// and carry a global usage cap; discounts are scope-based and carry none.
// That asymmetry is current product policy, not an oversight.
type Kind string

const (
	KindVoucher  Kind = "voucher"
	KindDiscount Kind = "discount"
)

// AppliesTo scopes which items a discount covers.
type AppliesTo string

const (
	AppliesToAllProducts        AppliesTo = "all_products"
	AppliesToSpecificProducts   AppliesTo = "specific_products"
	AppliesToSpecificCategories AppliesTo = "specific_categories"
)

// Status is derived from the clock and the admin toggle, never stored.
// Exhaustion is a property check on usage_count so that raising the limit
// immediately reopens redemption.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusSuspended Status = "suspended"
)

// PurchaseContext carries what the engine needs to know about the purchase
// a promotion is being applied to.
type PurchaseContext struct {
	AmountCents   int64
	ProductIDs    []uuid.UUID
	CategoryIDs   []uuid.UUID
	CustomerClass string
}
