package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/repo"
)

// WishlistService keeps the per-user wishlist with the storefront's
// toggle semantics: wishing an already-wished product removes it.
type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) Toggle(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	_, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	if err != nil {
		return false, err
	}

	return s.Repo.ToggleWishlist(ctx, userID, productID)
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	return s.Repo.GetWishlist(ctx, userID)
}
