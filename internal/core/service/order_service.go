package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/api/metrics"
	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

type OrderService struct {
	repo      ports.OrderRepository
	serial    ports.OrderSerializer
	publisher ports.OrderEventPublisher
	logger    zerolog.Logger
}

// NewOrderService wires the order workflow. serial and publisher may be nil:
// writes then run inline and status changes are not broadcast.
func NewOrderService(
	repo ports.OrderRepository,
	serial ports.OrderSerializer,
	publisher ports.OrderEventPublisher,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{repo: repo, serial: serial, publisher: publisher, logger: logger}
}

// CreateOrder stores a new pending order. The submitted total is kept as-is;
// when it disagrees with the line items the order is still accepted but the
// mismatch is logged and counted.
func (s *OrderService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", domain.ErrValidation)
	}
	if !domain.ValidOrderType(in.OrderType) {
		return nil, fmt.Errorf("%w: unknown orderType %q", domain.ErrValidation, in.OrderType)
	}
	if in.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total must not be negative", domain.ErrValidation)
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		if it.ItemID == "" {
			return nil, fmt.Errorf("%w: items[%d].itemId is required", domain.ErrValidation, i)
		}
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: items[%d].quantity must be at least 1", domain.ErrValidation, i)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: items[%d].price must not be negative", domain.ErrValidation, i)
		}
		items = append(items, domain.OrderItem{ItemID: it.ItemID, Quantity: it.Quantity, Price: it.Price})
	}

	order := &domain.Order{
		UserID:    in.UserID,
		Items:     items,
		Total:     in.Total,
		Status:    domain.OrderPending,
		OrderType: in.OrderType,
		Notes:     in.Notes,
	}
	if sum := order.ItemsTotal(); !sum.Equal(in.Total.Decimal) {
		metrics.OrderTotalMismatchTotal.Inc()
		s.logger.Warn().
			Str("user_id", in.UserID).
			Str("total", in.Total.String()).
			Str("items_total", sum.String()).
			Msg("order total does not match items")
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("create order: %w", err)
	}

	metrics.OrdersCreatedTotal.WithLabelValues(created.OrderType).Inc()
	s.logger.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Str("total", created.Total.String()).Msg("order created")
	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.GetOrdersByUser(ctx, userID)
}

// UpdateStatus sets the order status. Any non-empty status is accepted; the
// write is serialized per order and the change is then published.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, source string) (*domain.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}

	var (
		updated  *domain.Order
		previous domain.OrderStatus
	)
	err := s.serialize(ctx, id, func(ctx context.Context) error {
		current, err := s.repo.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		previous = current.Status
		updated, err = s.repo.UpdateOrderStatus(ctx, id, status)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrOrderNotFound) {
			s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order status")
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(statusLabel(status), source).Inc()
	s.logger.Info().
		Str("order_id", id).
		Str("status", string(status)).
		Str("previous", string(previous)).
		Str("source", source).
		Msg("order status updated")

	s.publish(ctx, domain.OrderStatusChange{
		OrderID:   updated.ID,
		UserID:    updated.UserID,
		Status:    updated.Status,
		Previous:  previous,
		Source:    source,
		ChangedAt: time.Now().UTC(),
	})
	return updated, nil
}

// AttachPaymentReference records the provider reference on the order.
func (s *OrderService) AttachPaymentReference(ctx context.Context, id, ref string) (*domain.Order, error) {
	var updated *domain.Order
	err := s.serialize(ctx, id, func(ctx context.Context) error {
		var err error
		updated, err = s.repo.UpdateOrderPaymentReference(ctx, id, ref)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("attach payment reference: %w", err)
	}
	s.logger.Info().Str("order_id", id).Str("payment_reference", ref).Msg("payment reference attached")
	return updated, nil
}

func (s *OrderService) serialize(ctx context.Context, id string, fn func(ctx context.Context) error) error {
	if s.serial == nil {
		return fn(ctx)
	}
	return s.serial.Do(ctx, id, fn)
}

func (s *OrderService) publish(ctx context.Context, change domain.OrderStatusChange) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderStatus(ctx, change); err != nil {
		s.logger.Warn().Err(err).Str("order_id", change.OrderID).Msg("failed to publish order status change")
	}
}
