package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// RegisterUserInput carries the fields accepted on sign-up.
type RegisterUserInput struct {
	Email          string
	Username       string
	ExternalAuthID string
	Preferences    json.RawMessage
}

// UserService manages storefront users.
type UserService interface {
	// Register returns the existing user when ExternalAuthID is already known;
	// created reports whether a new record was stored.
	Register(ctx context.Context, in RegisterUserInput) (user *domain.User, created bool, err error)
	GetByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error)
	SetPaymentCustomerReference(ctx context.Context, userID, ref string) (*domain.User, error)
}

// CreateMenuItemInput describes a new menu entry.
type CreateMenuItemInput struct {
	Name        string
	Description string
	Price       domain.Money
	Category    string
	ImageURL    string
	Available   *bool
	Ingredients []string
	Allergens   []string
}

// MenuService exposes the menu.
type MenuService interface {
	// List returns the whole menu, or only one category when category is non-empty.
	List(ctx context.Context, category string) ([]*domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, in CreateMenuItemInput) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error)
}

// OrderItemInput is one cart line as submitted by the client.
type OrderItemInput struct {
	ItemID   string
	Quantity int
	Price    domain.Money
}

// CreateOrderInput carries a checkout request.
type CreateOrderInput struct {
	UserID    string
	Items     []OrderItemInput
	Total     domain.Money
	OrderType string
	Notes     string
}

// Sources recorded with order status changes.
const (
	SourceStaff          = "staff"
	SourcePaymentWebhook = "payment_webhook"
)

// OrderService creates orders and drives their status.
type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, source string) (*domain.Order, error)
	AttachPaymentReference(ctx context.Context, id, ref string) (*domain.Order, error)
}

// CreateReservationInput carries a booking request.
type CreateReservationInput struct {
	UserID          string
	Date            time.Time
	PartySize       int
	Status          domain.ReservationStatus // optional, defaults to confirmed
	SpecialRequests string
	ContactPhone    string
}

// ReservationService books tables.
type ReservationService interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
}

// PaymentService coordinates orders with the payment provider.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, orderID string, amount domain.Money) (clientSecret string, err error)
	HandleProviderEvent(ctx context.Context, event domain.PaymentEvent) error
}

// SubscribeInput is a browser push subscription.
type SubscribeInput struct {
	UserID   string
	Endpoint string
	P256dh   string
	Auth     string
}

// NotificationService registers push subscriptions.
type NotificationService interface {
	Subscribe(ctx context.Context, in SubscribeInput) (*domain.PushSubscription, error)
}
