package authority

import "sort"

// PermissionSet is an immutable set of permissions. Mutation after
// construction is deliberately impossible: policy lives in data built once
// at process start.
type PermissionSet struct {
	members map[Permission]struct{}
}

func NewPermissionSet(perms ...Permission) PermissionSet {
	members := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		members[p] = struct{}{}
	}
	return PermissionSet{members: members}
}

func (s PermissionSet) Contains(p Permission) bool {
	_, ok := s.members[p]
	return ok
}

func (s PermissionSet) Len() int {
	return len(s.members)
}

// List returns the set's permissions sorted for deterministic output.
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s.members))
	for p := range s.members {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Table maps every role to its permission set. Every valid role has an
// entry, possibly empty.
type Table map[Role]PermissionSet

// DefaultTable returns the current storefront policy. Employee carries no
// permission on user, order, payment, shipping, or system resources; that
// restriction is expressed here as data, not as special-cased logic.
func DefaultTable() Table {
	return Table{
		RoleAdmin: NewPermissionSet(AllPermissions()...),
		RoleManager: NewPermissionSet(
			PermProductView, PermProductCreate, PermProductEdit,
			PermBundleView, PermBundleCreate, PermBundleEdit,
			PermOrderView, PermOrderEdit, PermOrderCancel,
			PermPaymentView, PermPaymentVerify,
			PermPromoView, PermPromoCreate, PermPromoEdit,
			PermFeedbackView, PermFeedbackReply,
			PermShippingView, PermShippingEdit,
		),
		RoleEmployee: NewPermissionSet(
			PermProductView, PermProductEdit,
			PermBundleView,
			PermPromoView,
			PermFeedbackView, PermFeedbackReply,
		),
	}
}
