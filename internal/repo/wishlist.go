package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
)

// ToggleWishlist adds the product to the user's wishlist, or removes it
// when already present. It reports whether the product is on the list
// afterwards.
func (r *GormRepo) ToggleWishlist(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	added := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.WishlistItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		added = true
		return tx.Create(&models.WishlistItem{UserID: userID, ProductID: productID}).Error
	})
	return added, err
}

// GetWishlist returns the wishlisted products, newest addition first.
func (r *GormRepo) GetWishlist(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	var items []models.WishlistItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(items))
	for _, it := range items {
		var p models.Product
		err := r.DB.WithContext(ctx).Where("id = ?", it.ProductID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue // product deleted by admin since it was wished
		}
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
