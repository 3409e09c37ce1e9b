package domain

import "time"

// SubscriptionKeys are the browser-issued encryption keys of a push subscription.
type SubscriptionKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// PushSubscription records where a browser wants push notifications sent.
// Delivery is handled elsewhere; this service only keeps the registrations.
type PushSubscription struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId,omitempty"`
	Endpoint  string           `json:"endpoint"`
	Keys      SubscriptionKeys `json:"keys"`
	CreatedAt time.Time        `json:"createdAt"`
}
