package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
)

// GetDiscount returns the discount-game row for a (user, product) pair,
// or nil when the product has never been spun.
func (r *GormRepo) GetDiscount(ctx context.Context, userID, productID uuid.UUID) (*models.ProductDiscount, error) {
	var d models.ProductDiscount
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormRepo) SaveDiscount(ctx context.Context, d *models.ProductDiscount) error {
	return r.DB.WithContext(ctx).Save(d).Error
}

// ResetDiscount wipes the game state for a (user, product) pair so the
// product can be spun again from scratch.
func (r *GormRepo) ResetDiscount(ctx context.Context, userID, productID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.ProductDiscount{}).Error
}

// ResetDiscountsForProducts is the bulk form used when a cart is
// cleared.
func (r *GormRepo) ResetDiscountsForProducts(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id IN ?", userID, productIDs).
		Delete(&models.ProductDiscount{}).Error
}
