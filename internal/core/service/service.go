// Package service holds the storefront's application logic. Services depend
// only on ports, so the in-memory store, the payment provider and the
// messaging adapters can be swapped without touching them.
package service

import (
	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

var (
	_ ports.UserService         = (*UserService)(nil)
	_ ports.MenuService         = (*MenuService)(nil)
	_ ports.OrderService        = (*OrderService)(nil)
	_ ports.ReservationService  = (*ReservationService)(nil)
	_ ports.PaymentService      = (*PaymentService)(nil)
	_ ports.NotificationService = (*NotificationService)(nil)
)

// otherLabel replaces client-supplied values that would otherwise mint a new
// metric series per request.
const otherLabel = "other"

func statusLabel(s domain.OrderStatus) string {
	switch s {
	case domain.OrderPending, domain.OrderConfirmed, domain.OrderPreparing, domain.OrderReady, domain.OrderCompleted:
		return string(s)
	}
	return otherLabel
}

func eventTypeLabel(t string) string {
	if t == domain.EventPaymentSucceeded {
		return t
	}
	return otherLabel
}
