package domain

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
)

// Order types.
const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
	OrderTypeDineIn   = "dine-in"
)

// PrepWindow is the fixed offset between order creation and estimated ready time.
const PrepWindow = 30 * time.Minute

// OrderItem is a price snapshot taken when the order was placed, so later
// menu price changes never touch historical orders.
type OrderItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Price    Money  `json:"price"`
}

// Order is the aggregate root of the checkout flow.
type Order struct {
	ID               string      `json:"id"`
	UserID           string      `json:"userId"`
	Items            []OrderItem `json:"items"`
	Total            Money       `json:"total"`
	Status           OrderStatus `json:"status"`
	OrderType        string      `json:"orderType"`
	PaymentReference *string     `json:"paymentReference"`
	Notes            string      `json:"notes,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	EstimatedReady   time.Time   `json:"estimatedReady"`
}

// ItemsTotal is the sum of price × quantity over the line items.
func (o *Order) ItemsTotal() Money {
	var sum Money
	for _, it := range o.Items {
		sum = sum.Plus(it.Price.Times(it.Quantity))
	}
	return sum
}

// OrderStatusChange is published whenever an order's status is written.
type OrderStatusChange struct {
	OrderID   string      `json:"orderId"`
	UserID    string      `json:"userId"`
	Status    OrderStatus `json:"status"`
	Previous  OrderStatus `json:"previousStatus"`
	Source    string      `json:"source"`
	ChangedAt time.Time   `json:"changedAt"`
}

// ValidOrderType reports whether t is one of the order types.
func ValidOrderType(t string) bool {
	switch t {
	case OrderTypePickup, OrderTypeDelivery, OrderTypeDineIn:
		return true
	}
	return false
}
