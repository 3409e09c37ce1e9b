package memory

import (
	"strconv"

	"github.com/lionscafe/storefront/internal/core/domain"
)

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	v := *ref
	return &v
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.PaymentCustomerReference = cloneRef(u.PaymentCustomerReference)
	if u.Preferences != nil {
		c.Preferences = append([]byte(nil), u.Preferences...)
	}
	return &c
}

func cloneMenuItem(m *domain.MenuItem) *domain.MenuItem {
	c := *m
	c.Ingredients = cloneStrings(m.Ingredients)
	c.Allergens = cloneStrings(m.Allergens)
	return &c
}

func cloneOrder(o *domain.Order) *domain.Order {
	c := *o
	c.Items = append([]domain.OrderItem(nil), o.Items...)
	c.PaymentReference = cloneRef(o.PaymentReference)
	return &c
}

// menuLess orders numeric seed ids numerically and everything else after
// them, lexically.
func menuLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
