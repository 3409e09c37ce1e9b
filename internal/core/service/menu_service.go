package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

type MenuService struct {
	repo   ports.MenuRepository
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, logger: logger}
}

// List returns every menu item, or only those in category when it is set.
func (s *MenuService) List(ctx context.Context, category string) ([]*domain.MenuItem, error) {
	if category == "" {
		return s.repo.ListMenuItems(ctx)
	}
	return s.repo.GetMenuItemsByCategory(ctx, category)
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, in ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !domain.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	item := &domain.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Available:   available,
		Ingredients: nonNil(in.Ingredients),
		Allergens:   nonNil(in.Allergens),
	}

	created, err := s.repo.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	s.logger.Info().Str("menu_item_id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

// Update applies a partial change to an existing item.
func (s *MenuService) Update(ctx context.Context, id string, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if patch.Category != nil && !domain.ValidCategory(*patch.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *patch.Category)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	updated, err := s.repo.UpdateMenuItem(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	s.logger.Info().Str("menu_item_id", id).Msg("menu item updated")
	return updated, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
