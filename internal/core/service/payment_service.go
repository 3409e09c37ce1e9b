package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/api/metrics"
	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

const defaultCurrency = "usd"

// PaymentDeps groups the collaborators of PaymentService. Provider, Dedup and
// Audit are optional.
type PaymentDeps struct {
	Provider ports.PaymentProvider
	Orders   ports.OrderService
	Dedup    ports.EventDeduplicator
	Audit    ports.PaymentEventRepository
	Currency string
}

// PaymentService creates payment intents for orders and reconciles the
// provider's asynchronous confirmations back into order status.
type PaymentService struct {
	provider ports.PaymentProvider
	orders   ports.OrderService
	dedup    ports.EventDeduplicator
	audit    ports.PaymentEventRepository
	currency string
	logger   zerolog.Logger
}

func NewPaymentService(deps PaymentDeps, logger zerolog.Logger) *PaymentService {
	currency := strings.ToLower(deps.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	return &PaymentService{
		provider: deps.Provider,
		orders:   deps.Orders,
		dedup:    deps.Dedup,
		audit:    deps.Audit,
		currency: currency,
		logger:   logger,
	}
}

// CreatePaymentIntent asks the provider for an intent covering amount, links
// it to the order, and returns the client secret. The order must exist before
// the provider is called.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, orderID string, amount domain.Money) (string, error) {
	if s.provider == nil {
		metrics.PaymentIntentsTotal.WithLabelValues("unavailable").Inc()
		return "", domain.ErrPaymentProviderUnavailable
	}
	if orderID == "" {
		return "", fmt.Errorf("%w: orderId is required", domain.ErrValidation)
	}
	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	intent, err := s.provider.CreateIntent(ctx, ports.PaymentIntentRequest{
		AmountMinor: amount.MinorUnits(),
		Currency:    s.currency,
		Metadata:    map[string]string{"orderId": orderID},
	})
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("provider_error").Inc()
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("payment provider rejected intent")
		if errors.Is(err, domain.ErrPaymentProvider) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}

	if _, err := s.orders.AttachPaymentReference(ctx, orderID, intent.ID); err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("order_id", orderID).Str("payment_reference", intent.ID).Msg("failed to attach payment reference")
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	s.logger.Info().
		Str("order_id", orderID).
		Str("payment_reference", intent.ID).
		Int64("amount_minor", amount.MinorUnits()).
		Msg("payment intent created")
	return intent.ClientSecret, nil
}

// HandleProviderEvent applies one webhook notification. Successful payments
// confirm their order; every other event type is acknowledged without side
// effects. An internal failure while confirming is returned for logging and
// left unmarked in the dedup store; the webhook is still acknowledged, so the
// audit record with outcome "failed" is what surfaces it.
func (s *PaymentService) HandleProviderEvent(ctx context.Context, ev domain.PaymentEvent) error {
	outcome, err := s.process(ctx, ev)

	metrics.PaymentWebhookEventsTotal.WithLabelValues(eventTypeLabel(ev.Type), outcome).Inc()
	s.record(ctx, ev, outcome)

	if err != nil {
		return fmt.Errorf("handle payment event: %w", err)
	}
	return nil
}

func (s *PaymentService) process(ctx context.Context, ev domain.PaymentEvent) (string, error) {
	log := s.logger.With().Str("event_id", ev.ID).Str("event_type", ev.Type).Logger()

	// 1. Idempotency check; a failing store never blocks confirmation.
	if s.dedup != nil && ev.ID != "" {
		dup, err := s.dedup.IsDuplicate(ctx, ev.ID)
		if err != nil {
			log.Warn().Err(err).Msg("dedup check failed, processing anyway")
		} else if dup {
			log.Debug().Msg("duplicate payment event skipped")
			return domain.OutcomeDuplicate, nil
		}
	}

	// 2. Dispatch on event type.
	var outcome string
	switch ev.Type {
	case domain.EventPaymentSucceeded:
		if ev.OrderID == "" {
			log.Warn().Str("payment_reference", ev.PaymentReference).Msg("payment succeeded without order id")
			outcome = domain.OutcomeMissingRef
			break
		}
		_, err := s.orders.UpdateStatus(ctx, ev.OrderID, domain.OrderConfirmed, ports.SourcePaymentWebhook)
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			log.Warn().Str("order_id", ev.OrderID).Msg("payment succeeded for unknown order")
			outcome = domain.OutcomeNoOrder
		case err != nil:
			log.Error().Err(err).Str("order_id", ev.OrderID).Msg("failed to confirm order")
			return domain.OutcomeFailed, err
		default:
			log.Info().Str("order_id", ev.OrderID).Msg("order confirmed by payment")
			outcome = domain.OutcomeConfirmed
		}
	default:
		log.Debug().Msg("payment event ignored")
		outcome = domain.OutcomeIgnored
	}

	// 3. Remember the event once it has been handled.
	if s.dedup != nil && ev.ID != "" {
		if err := s.dedup.Mark(ctx, ev.ID); err != nil {
			log.Warn().Err(err).Msg("failed to set dedup key")
		}
	}
	return outcome, nil
}

func (s *PaymentService) record(ctx context.Context, ev domain.PaymentEvent, outcome string) {
	if s.audit == nil {
		return
	}
	rec := &domain.PaymentEventRecord{
		EventID:          ev.ID,
		Type:             ev.Type,
		OrderID:          ev.OrderID,
		PaymentReference: ev.PaymentReference,
		Outcome:          outcome,
		ReceivedAt:       time.Now().UTC(),
	}
	if err := s.audit.InsertEvent(ctx, rec); err != nil {
		s.logger.Warn().Err(err).Str("event_id", ev.ID).Msg("failed to write payment event audit record")
	}
}
