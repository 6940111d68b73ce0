package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/janatafootwear/storefront/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders newest first. A nil userID lists everyone's
// orders (admin view).
func (r *GormRepo) ListOrders(ctx context.Context, userID *uuid.UUID, offset, limit int) (int64, []models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var orders []models.Order
	if err := q.Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return 0, nil, err
	}
	return total, orders, nil
}

// UpdateOrderStatus persists only the mutable order fields.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Model(order).
		Select("status", "picked_up_at").
		Updates(map[string]any{
			"status":       order.Status,
			"picked_up_at": order.PickedUpAt,
		}).Error
}
