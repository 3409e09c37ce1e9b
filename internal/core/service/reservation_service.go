package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/api/metrics"
	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

type ReservationService struct {
	repo   ports.ReservationRepository
	logger zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, logger: logger}
}

// CreateReservation books a table. The status defaults to confirmed; dates in
// the past are accepted.
func (s *ReservationService) CreateReservation(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if in.PartySize < 1 {
		return nil, fmt.Errorf("%w: partySize must be at least 1", domain.ErrValidation)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = domain.ReservationConfirmed
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, status)
	}

	created, err := s.repo.CreateReservation(ctx, &domain.Reservation{
		UserID:          in.UserID,
		Date:            in.Date.UTC(),
		PartySize:       in.PartySize,
		Status:          status,
		SpecialRequests: in.SpecialRequests,
		ContactPhone:    in.ContactPhone,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create reservation")
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.logger.Info().Str("reservation_id", created.ID).Str("user_id", created.UserID).Int("party_size", created.PartySize).Msg("reservation created")
	return created, nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.repo.GetReservationsByUser(ctx, userID)
}

// UpdateStatus moves a reservation to one of the known statuses.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", domain.ErrValidation, status)
	}
	updated, err := s.repo.UpdateReservationStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
	s.logger.Info().Str("reservation_id", id).Str("status", string(status)).Msg("reservation status updated")
	return updated, nil
}
