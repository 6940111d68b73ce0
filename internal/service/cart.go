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

// CartService is the cart ledger: ordered lines keyed by
// (product, size) with locked-in discounts and derived totals. It owns
// the discount-reset trigger: dropping the last line of a product
// re-opens that product's discount game.
type CartService struct {
	Repo      *repo.GormRepo
	Discounts *DiscountService
}

// AddItem puts one unit of a product into the cart. An existing
// (product, size) line has its quantity bumped and keeps the discount
// it was created with; a new line snapshots the product and the
// currently accepted discount, if any.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, size string) (*models.CartItem, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("product id required: %w", ErrValidation)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	if size != "" && !containsSize(product.Sizes, size) {
		return nil, fmt.Errorf("size %q not available: %w", size, ErrValidation)
	}

	discount, err := s.Discounts.AcceptedDiscount(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Name:      product.Name,
		UnitPrice: product.Price,
		Discount:  discount,
	}
	if _, err := s.Repo.UpsertCartLine(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity updates a line in place; zero behaves exactly like
// RemoveItem.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID uuid.UUID, size string, quantity uint) (*models.CartItem, error) {
	if quantity == 0 {
		if err := s.RemoveItem(ctx, userID, productID, size); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.Repo.SetCartQuantity(ctx, userID, productID, size, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart line: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes one (product, size) line. Other size variants of
// the product are untouched; when none remain the product's discount
// state is reset so it can be spun again.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID, size string) error {
	remaining, err := s.Repo.RemoveCartLine(ctx, userID, productID, size)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart line: %w", ErrNotFound)
	}
	if err != nil {
		return err
	}

	if !remaining {
		return s.Discounts.Reset(ctx, userID, productID)
	}
	return nil
}

// Clear empties the cart and resets the discount state of every product
// that was in it.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	items, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	productIDs := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		productIDs = append(productIDs, it.ProductID)
	}

	if err := s.Repo.ClearCart(ctx, userID); err != nil {
		return err
	}
	return s.Repo.ResetDiscountsForProducts(ctx, userID, productIDs)
}

// GetLines returns the cart lines in insertion order.
func (s *CartService) GetLines(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, userID)
}

// Subtotal sums the effective line totals in whole rupees.
func (s *CartService) Subtotal(ctx context.Context, userID uuid.UUID) (int64, error) {
	items, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return 0, err
	}
	return SubtotalOf(items), nil
}

// SubtotalOf is the pure pricing rule over a set of lines.
func SubtotalOf(items []models.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += models.LineTotal(it.UnitPrice, it.Discount, it.Quantity)
	}
	return total
}

func containsSize(sizes models.StringList, size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
