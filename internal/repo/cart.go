package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCartLine(ctx context.Context, userID, productID uuid.UUID, size string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertCartLine bumps the quantity of an existing (product, size) line
// by one keeping its stored discount, or inserts the given line with
// quantity one. It reports whether a new line was created.
func (r *GormRepo) UpsertCartLine(ctx context.Context, item *models.CartItem) (bool, error) {
	created := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ? AND size = ?", item.UserID, item.ProductID, item.Size).
			Update("quantity", gorm.Expr("quantity + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return tx.Where("user_id = ? AND product_id = ? AND size = ?", item.UserID, item.ProductID, item.Size).
				First(item).Error
		}

		item.Quantity = 1
		created = true
		return tx.Create(item).Error
	})
	return created, err
}

func (r *GormRepo) SetCartQuantity(ctx context.Context, userID, productID uuid.UUID, size string, quantity uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
			First(&item).Error; err != nil {
			return err
		}
		if err := tx.Model(&item).Update("quantity", quantity).Error; err != nil {
			return err
		}
		item.Quantity = quantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartLine deletes one (product, size) line and reports whether
// any other line for the product remains in the user's cart.
func (r *GormRepo) RemoveCartLine(ctx context.Context, userID, productID uuid.UUID, size string) (bool, error) {
	remaining := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
			Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var n int64
		if err := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Count(&n).Error; err != nil {
			return err
		}
		remaining = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return remaining, nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
