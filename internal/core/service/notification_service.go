package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

// NotificationService keeps browser push registrations. Sending is done by a
// separate worker that reads them.
type NotificationService struct {
	repo   ports.SubscriptionRepository
	logger zerolog.Logger
}

func NewNotificationService(repo ports.SubscriptionRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

func (s *NotificationService) Subscribe(ctx context.Context, in ports.SubscribeInput) (*domain.PushSubscription, error) {
	u, err := url.Parse(in.Endpoint)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("%w: endpoint must be an https URL", domain.ErrValidation)
	}
	if in.P256dh == "" || in.Auth == "" {
		return nil, fmt.Errorf("%w: keys.p256dh and keys.auth are required", domain.ErrValidation)
	}

	sub, err := s.repo.SaveSubscription(ctx, &domain.PushSubscription{
		UserID:   in.UserID,
		Endpoint: in.Endpoint,
		Keys:     domain.SubscriptionKeys{P256dh: in.P256dh, Auth: in.Auth},
	})
	if err != nil {
		return nil, fmt.Errorf("save subscription: %w", err)
	}
	s.logger.Info().Str("subscription_id", sub.ID).Str("host", u.Host).Msg("push subscription stored")
	return sub, nil
}
