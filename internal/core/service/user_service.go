package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a user unless one with the same external auth id already
// exists, in which case that user is returned and created is false. Two
// concurrent registrations of the same external auth id both return the user
// that won the create.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, bool, error) {
	if in.Email == "" {
		return nil, false, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if in.Username == "" {
		return nil, false, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	if in.ExternalAuthID != "" {
		existing, err := s.repo.GetUserByExternalAuthID(ctx, in.ExternalAuthID)
		if err == nil {
			s.logger.Debug().Str("user_id", existing.ID).Msg("user already registered")
			return existing, false, nil
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, fmt.Errorf("register user: %w", err)
		}
	}

	created, err := s.repo.CreateUser(ctx, &domain.User{
		Email:          in.Email,
		Username:       in.Username,
		ExternalAuthID: in.ExternalAuthID,
		Preferences:    in.Preferences,
	})
	if errors.Is(err, domain.ErrUserExists) && in.ExternalAuthID != "" {
		existing, lookupErr := s.repo.GetUserByExternalAuthID(ctx, in.ExternalAuthID)
		if lookupErr == nil {
			s.logger.Debug().Str("user_id", existing.ID).Msg("user registered concurrently")
			return existing, false, nil
		}
	}
	if err != nil {
		return nil, false, fmt.Errorf("register user: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, true, nil
}

func (s *UserService) GetByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error) {
	return s.repo.GetUserByExternalAuthID(ctx, externalAuthID)
}

// SetPaymentCustomerReference stores the payment provider's customer id.
func (s *UserService) SetPaymentCustomerReference(ctx context.Context, userID, ref string) (*domain.User, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: customer reference is required", domain.ErrValidation)
	}
	u, err := s.repo.UpdateUserPaymentCustomerReference(ctx, userID, ref)
	if err != nil {
		return nil, fmt.Errorf("set payment customer reference: %w", err)
	}
	return u, nil
}
