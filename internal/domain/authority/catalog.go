package authority

// Permission is an opaque capability identifier in resource:action form.
// The catalog is fixed at compile time; membership per role lives in Table.
type Permission string

func (p Permission) String() string {
	return string(p)
}

// User permissions
const (
	PermUserView   Permission = "user:view"
	PermUserCreate Permission = "user:create"
	PermUserEdit   Permission = "user:edit"
	PermUserDelete Permission = "user:delete"
)

// Product permissions
const (
	PermProductView   Permission = "product:view"
	PermProductCreate Permission = "product:create"
	PermProductEdit   Permission = "product:edit"
	PermProductDelete Permission = "product:delete"
)

// Bundle permissions
const (
	PermBundleView   Permission = "bundle:view"
	PermBundleCreate Permission = "bundle:create"
	PermBundleEdit   Permission = "bundle:edit"
	PermBundleDelete Permission = "bundle:delete"
)

// Order permissions
const (
	PermOrderView   Permission = "order:view"
	PermOrderEdit   Permission = "order:edit"
	PermOrderCancel Permission = "order:cancel"
	PermOrderRefund Permission = "order:refund"
)

// Payment permissions
const (
	PermPaymentView   Permission = "payment:view"
	PermPaymentVerify Permission = "payment:verify"
	PermPaymentRefund Permission = "payment:refund"
)

// Promotion permissions
const (
	PermPromoView   Permission = "promo:view"
	PermPromoCreate Permission = "promo:create"
	PermPromoEdit   Permission = "promo:edit"
	PermPromoDelete Permission = "promo:delete"
)

// Feedback permissions
const (
	PermFeedbackView   Permission = "feedback:view"
	PermFeedbackReply  Permission = "feedback:reply"
	PermFeedbackDelete Permission = "feedback:delete"
)

// Shipping permissions
const (
	PermShippingView Permission = "shipping:view"
	PermShippingEdit Permission = "shipping:edit"
)

// System permissions
const (
	PermSystemSettings Permission = "system:settings"
	PermSystemExport   Permission = "system:export"
)

func AllPermissions() []Permission {
	return []Permission{
		PermUserView, PermUserCreate, PermUserEdit, PermUserDelete,
		PermProductView, PermProductCreate, PermProductEdit, PermProductDelete,
		PermBundleView, PermBundleCreate, PermBundleEdit, PermBundleDelete,
		PermOrderView, PermOrderEdit, PermOrderCancel, PermOrderRefund,
		PermPaymentView, PermPaymentVerify, PermPaymentRefund,
		PermPromoView, PermPromoCreate, PermPromoEdit, PermPromoDelete,
		PermFeedbackView, PermFeedbackReply, PermFeedbackDelete,
		PermShippingView, PermShippingEdit,
		PermSystemSettings, PermSystemExport,
	}
}
