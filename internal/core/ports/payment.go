package ports

import (
	"context"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// PaymentIntentRequest asks the provider to authorise a charge.
type PaymentIntentRequest struct {
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// PaymentIntent is the provider's answer: an opaque reference plus the
// secret the client uses to complete the payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentProvider creates payment intents at an external processor.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
}

// WebhookDecoder turns a raw webhook delivery into a PaymentEvent. It fails
// with domain.ErrValidation for malformed or unauthenticated payloads.
type WebhookDecoder interface {
	Decode(payload []byte, signatureHeader string) (domain.PaymentEvent, error)
}

// PaymentEventRepository stores the webhook audit trail.
type PaymentEventRepository interface {
	InsertEvent(ctx context.Context, rec *domain.PaymentEventRecord) error
}

// EventDeduplicator remembers provider event ids that were already handled.
type EventDeduplicator interface {
	IsDuplicate(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}
