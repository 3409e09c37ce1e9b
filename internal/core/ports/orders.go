package ports

import (
	"context"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// OrderEventPublisher fans order status changes out to other systems.
type OrderEventPublisher interface {
	PublishOrderStatus(ctx context.Context, change domain.OrderStatusChange) error
}

// OrderSerializer runs fn so that calls sharing a key never overlap and
// execute in arrival order.
type OrderSerializer interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
