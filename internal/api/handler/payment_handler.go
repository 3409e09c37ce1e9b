package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

// Stripe caps event payloads well below this.
const maxWebhookBody = 512 << 10

// PaymentHandler handles payment intent creation and provider webhooks.
type PaymentHandler struct {
	service ports.PaymentService
	decoder ports.WebhookDecoder
	logger  zerolog.Logger
}

func NewPaymentHandler(service ports.PaymentService, decoder ports.WebhookDecoder, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, decoder: decoder, logger: logger}
}

// CreateIntent handles POST /api/create-payment-intent.
//
// @Summary      Create a payment intent for an order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentIntentRequest  true  "Amount in major units and order id"
// @Success      200   {object}  clientSecretResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Failure      503   {object}  messageResponse
// @Router       /api/create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	secret, err := h.service.CreatePaymentIntent(c.Request().Context(), req.OrderID, *req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientSecretResponse{ClientSecret: secret})
}

// Webhook handles POST /api/payment-webhook. Every well-formed event is
// acknowledged with 200 so the provider does not retry it; only malformed or
// unauthenticated payloads are rejected.
//
// @Summary      Receive payment provider events
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  false  "Checked when a webhook secret is configured"
// @Success      200               {object}  webhookAckResponse
// @Failure      400               {object}  messageResponse
// @Router       /api/payment-webhook [post]
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return fmt.Errorf("%w: unreadable webhook body", domain.ErrValidation)
	}

	event, err := h.decoder.Decode(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		return err
	}

	if err := h.service.HandleProviderEvent(c.Request().Context(), event); err != nil {
		h.logger.Error().Err(err).Str("event_id", event.ID).Str("event_type", event.Type).Msg("payment event acknowledged with errors")
	}
	return c.JSON(http.StatusOK, webhookAckResponse{Received: true})
}
