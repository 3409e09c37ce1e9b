package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// WebhookDecoder reads Stripe event envelopes. With an empty secret the
// Stripe-Signature header is not checked.
type WebhookDecoder struct {
	secret string
}

func NewWebhookDecoder(secret string) *WebhookDecoder {
	return &WebhookDecoder{secret: secret}
}

type envelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string         `json:"id"`
			Metadata map[string]any `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
	Metadata map[string]any `json:"metadata"`
}

// Decode verifies the signature when a secret is configured and extracts the
// order id from data.object.metadata.orderId, falling back to a top-level
// metadata object.
func (d *WebhookDecoder) Decode(payload []byte, signatureHeader string) (domain.PaymentEvent, error) {
	if d.secret != "" {
		if err := webhook.ValidatePayload(payload, signatureHeader, d.secret); err != nil {
			return domain.PaymentEvent{}, fmt.Errorf("%w: invalid webhook signature: %v", domain.ErrValidation, err)
		}
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return domain.PaymentEvent{}, fmt.Errorf("%w: malformed webhook payload: %v", domain.ErrValidation, err)
	}

	orderID := stringValue(env.Data.Object.Metadata["orderId"])
	if orderID == "" {
		orderID = stringValue(env.Metadata["orderId"])
	}
	return domain.PaymentEvent{
		ID:               env.ID,
		Type:             env.Type,
		OrderID:          orderID,
		PaymentReference: env.Data.Object.ID,
	}, nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
