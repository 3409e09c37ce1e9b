package ports

import (
	"context"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// Lookups return a copy of the stored record, or the matching domain
// Err*NotFound sentinel when nothing is stored under the key.

// UserRepository persists storefront users.
type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error)
	UpdateUserPaymentCustomerReference(ctx context.Context, id, ref string) (*domain.User, error)
}

// MenuRepository persists the menu.
type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error)
	GetMenuItemsByCategory(ctx context.Context, category string) ([]*domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
}

// OrderRepository persists orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	UpdateOrderPaymentReference(ctx context.Context, id, ref string) (*domain.Order, error)
}

// ReservationRepository persists table reservations.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
	GetReservationsByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
}

// SubscriptionRepository persists push subscriptions keyed by endpoint.
type SubscriptionRepository interface {
	SaveSubscription(ctx context.Context, s *domain.PushSubscription) (*domain.PushSubscription, error)
}
