package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/core/domain"
)

func TestPaymentHandler_CreateIntent(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{
		intentFn: func(_ context.Context, orderID string, amount domain.Money) (string, error) {
			if orderID != "o1" || amount.String() != "9.00" {
				t.Fatalf("unexpected call: %s %s", orderID, amount)
			}
			return "pi_123_secret_abc", nil
		},
	}, &stubDecoder{}, zerolog.Nop())

	c, rec := newContext(http.MethodPost, "/api/create-payment-intent", `{"amount":9,"orderId":"o1"}`)
	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp clientSecretResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ClientSecret != "pi_123_secret_abc" {
		t.Fatalf("unexpected client secret %q", resp.ClientSecret)
	}
}

func TestPaymentHandler_CreateIntent_Errors(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{
		intentFn: func(context.Context, string, domain.Money) (string, error) {
			return "", domain.ErrPaymentProviderUnavailable
		},
	}, &stubDecoder{}, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/api/create-payment-intent", `{"amount":"9.00","orderId":"o1"}`)
	if err := h.CreateIntent(c); !errors.Is(err, domain.ErrPaymentProviderUnavailable) {
		t.Fatalf("expected ErrPaymentProviderUnavailable, got %v", err)
	}

	c, _ = newContext(http.MethodPost, "/api/create-payment-intent", `{"orderId":"o1"}`)
	if err := h.CreateIntent(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPaymentHandler_Webhook_Acknowledges(t *testing.T) {
	var handled domain.PaymentEvent
	h := NewPaymentHandler(&stubPaymentService{
		eventFn: func(_ context.Context, ev domain.PaymentEvent) error {
			handled = ev
			return nil
		},
	}, &stubDecoder{
		decodeFn: func(payload []byte, sig string) (domain.PaymentEvent, error) {
			if sig != "t=1,v1=abc" {
				t.Fatalf("signature header not forwarded: %q", sig)
			}
			if string(payload) != `{"id":"evt_1"}` {
				t.Fatalf("unexpected payload %s", payload)
			}
			return domain.PaymentEvent{ID: "evt_1", Type: domain.EventPaymentSucceeded, OrderID: "o1"}, nil
		},
	}, zerolog.Nop())

	c, rec := newContext(http.MethodPost, "/api/payment-webhook", `{"id":"evt_1"}`)
	c.Request().Header.Set("Stripe-Signature", "t=1,v1=abc")
	if err := h.Webhook(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "{\"received\":true}\n" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if handled.OrderID != "o1" {
		t.Fatalf("event not handed to service: %+v", handled)
	}
}

func TestPaymentHandler_Webhook_ServiceFailureStillAcknowledged(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{
		eventFn: func(context.Context, domain.PaymentEvent) error { return errBoom },
	}, &stubDecoder{
		decodeFn: func([]byte, string) (domain.PaymentEvent, error) {
			return domain.PaymentEvent{ID: "evt_2", Type: domain.EventPaymentSucceeded}, nil
		},
	}, zerolog.Nop())

	c, rec := newContext(http.MethodPost, "/api/payment-webhook", `{}`)
	if err := h.Webhook(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPaymentHandler_Webhook_MalformedRejected(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{
		eventFn: func(context.Context, domain.PaymentEvent) error {
			t.Fatal("service should not be called")
			return nil
		},
	}, &stubDecoder{
		decodeFn: func([]byte, string) (domain.PaymentEvent, error) {
			return domain.PaymentEvent{}, fmt.Errorf("%w: malformed webhook payload", domain.ErrValidation)
		},
	}, zerolog.Nop())

	c, _ := newContext(http.MethodPost, "/api/payment-webhook", `{{`)
	if err := h.Webhook(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
