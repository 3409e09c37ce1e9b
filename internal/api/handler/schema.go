package handler

import (
	"encoding/json"
	"time"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// messageResponse is the error envelope rendered by the central error handler.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Users ---

type registerUserRequest struct {
	Email          string          `json:"email"          validate:"required,email"`
	Username       string          `json:"username"       validate:"required"`
	ExternalAuthID string          `json:"externalAuthId"`
	Preferences    json.RawMessage `json:"preferences"    swaggertype:"object"`
}

// --- Menu ---

type createMenuItemRequest struct {
	Name        string        `json:"name"        validate:"required"`
	Description string        `json:"description"`
	Price       *domain.Money `json:"price"       validate:"required" swaggertype:"string" example:"4.50"`
	Category    string        `json:"category"    validate:"required,oneof=bakery coffee beverages meals"`
	ImageURL    string        `json:"imageUrl"    validate:"omitempty,url"`
	Available   *bool         `json:"available"`
	Ingredients []string      `json:"ingredients"`
	Allergens   []string      `json:"allergens"`
}

type updateMenuItemRequest struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *domain.Money `json:"price"       swaggertype:"string" example:"4.75"`
	Category    *string       `json:"category"    validate:"omitempty,oneof=bakery coffee beverages meals"`
	ImageURL    *string       `json:"imageUrl"    validate:"omitempty,url"`
	Available   *bool         `json:"available"`
	Ingredients []string      `json:"ingredients"`
	Allergens   []string      `json:"allergens"`
}

func (r updateMenuItemRequest) patch() domain.MenuItemPatch {
	return domain.MenuItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
		Ingredients: r.Ingredients,
		Allergens:   r.Allergens,
	}
}

// --- Orders ---

type orderItemRequest struct {
	ItemID   string        `json:"itemId"   validate:"required"`
	Quantity int           `json:"quantity" validate:"required,min=1"`
	Price    *domain.Money `json:"price"    validate:"required" swaggertype:"string" example:"4.50"`
}

type createOrderRequest struct {
	UserID    string             `json:"userId"    validate:"required"`
	Items     []orderItemRequest `json:"items"     validate:"required,min=1,dive"`
	Total     *domain.Money      `json:"total"     validate:"required" swaggertype:"string" example:"9.00"`
	OrderType string             `json:"orderType" validate:"required,oneof=pickup delivery dine-in"`
	Notes     string             `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Reservations ---

type createReservationRequest struct {
	UserID          string    `json:"userId"          validate:"required"`
	Date            time.Time `json:"date"`
	PartySize       int       `json:"partySize"       validate:"required,min=1"`
	Status          string    `json:"status"          validate:"omitempty,oneof=confirmed cancelled completed"`
	SpecialRequests string    `json:"specialRequests"`
	ContactPhone    string    `json:"contactPhone"`
}

// --- Payments ---

type createPaymentIntentRequest struct {
	Amount  *domain.Money `json:"amount"  validate:"required" swaggertype:"string" example:"9.00"`
	OrderID string        `json:"orderId" validate:"required"`
}

type clientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type webhookAckResponse struct {
	Received bool `json:"received"`
}

// --- Notifications ---

type subscriptionKeysRequest struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth"   validate:"required"`
}

type subscribeRequest struct {
	Endpoint string                  `json:"endpoint" validate:"required,url"`
	Keys     subscriptionKeysRequest `json:"keys"`
	UserID   string                  `json:"userId"`
}
