// Package stripe adapts the Stripe API to the payment ports.
package stripe

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

// Provider creates payment intents through the Stripe API.
type Provider struct {
	intents intentCreator
}

// intentCreator is the slice of the Stripe client the provider needs.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// NewProvider returns a Provider authenticated with secretKey.
func NewProvider(secretKey string) *Provider {
	sc := client.New(secretKey, nil)
	return &Provider{intents: sc.PaymentIntents}
}

// CreateIntent creates a PaymentIntent with automatic payment methods enabled.
// Stripe rejections are wrapped in domain.ErrPaymentProvider with Stripe's
// own message.
func (p *Provider) CreateIntent(ctx context.Context, req ports.PaymentIntentRequest) (*ports.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinor),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.intents.New(params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) && se.Msg != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrPaymentProvider, se.Msg)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}
	return &ports.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
