package domain

import "time"

// EventPaymentSucceeded is the provider event type that confirms an order.
const EventPaymentSucceeded = "payment_intent.succeeded"

// Webhook processing outcomes, used for the audit trail and metrics.
const (
	OutcomeConfirmed  = "confirmed"
	OutcomeIgnored    = "ignored"
	OutcomeDuplicate  = "duplicate"
	OutcomeNoOrder    = "order_not_found"
	OutcomeMissingRef = "missing_order_id"
	OutcomeFailed     = "failed"
)

// PaymentEvent is the provider-agnostic view of a webhook notification.
type PaymentEvent struct {
	ID               string
	Type             string
	OrderID          string
	PaymentReference string
}

// PaymentEventRecord is the audit entry stored for every processed webhook.
type PaymentEventRecord struct {
	EventID          string    `json:"eventId" bson:"event_id"`
	Type             string    `json:"type" bson:"type"`
	OrderID          string    `json:"orderId,omitempty" bson:"order_id,omitempty"`
	PaymentReference string    `json:"paymentReference,omitempty" bson:"payment_reference,omitempty"`
	Outcome          string    `json:"outcome" bson:"outcome"`
	ReceivedAt       time.Time `json:"receivedAt" bson:"received_at"`
}
