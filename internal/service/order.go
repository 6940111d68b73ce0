package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/repo"
)

// PickupWindow is how long after confirmation an order is promised to
// be ready at the store.
const PickupWindow = 2 * time.Hour

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// OrderService snapshots carts into orders and walks their status
// lifecycle. Orders are immutable after creation apart from status and
// the pickup stamp.
type OrderService struct {
	Repo *repo.GormRepo

	// Now is the clock; defaults to time.Now. Tests pin it.
	Now func() time.Time
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateOrder freezes the user's current cart into an order. The cart
// itself is left alone; the checkout handler clears it after the order
// exists.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, info CustomerInfo, method models.PaymentMethod, upiID string) (*models.Order, error) {
	if info.Name == "" {
		return nil, fmt.Errorf("name required: %w", ErrValidation)
	}
	if !phonePattern.MatchString(info.Phone) {
		return nil, fmt.Errorf("10-digit phone required: %w", ErrValidation)
	}
	switch method {
	case models.PaymentUPI:
		if upiID == "" {
			return nil, fmt.Errorf("upi id required: %w", ErrValidation)
		}
	case models.PaymentCash:
		upiID = ""
	default:
		return nil, fmt.Errorf("unknown payment method %q: %w", method, ErrValidation)
	}

	lines, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", ErrValidation)
	}

	var total int64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		lineTotal := models.LineTotal(line.UnitPrice, line.Discount, line.Quantity)
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Size:      line.Size,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}

	created := s.now()
	order := &models.Order{
		UserID:            userID,
		CustomerName:      info.Name,
		CustomerPhone:     info.Phone,
		CustomerEmail:     info.Email,
		PaymentMethod:     method,
		UPIID:             upiID,
		Total:             total,
		Status:            models.OrderStatusPending,
		Items:             items,
		CreatedAt:         created,
		EstimatedPickupAt: created.Add(PickupWindow),
	}

	return s.Repo.CreateOrder(ctx, order)
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID *uuid.UUID, offset, limit int) (int64, []models.Order, error) {
	return s.Repo.ListOrders(ctx, userID, offset, limit)
}

// nextStatus is the forward line of the lifecycle; cancelled branches
// off every non-terminal state.
var nextStatus = map[models.OrderStatus]models.OrderStatus{
	models.OrderStatusPending:   models.OrderStatusConfirmed,
	models.OrderStatusConfirmed: models.OrderStatusReady,
	models.OrderStatusReady:     models.OrderStatusCompleted,
}

func isTerminal(st models.OrderStatus) bool {
	return st == models.OrderStatusCompleted || st == models.OrderStatusCancelled
}

// UpdateStatus advances the lifecycle one step. Entering completed
// stamps the pickup time, exactly once.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	valid := nextStatus[order.Status] == newStatus ||
		(newStatus == models.OrderStatusCancelled && !isTerminal(order.Status))
	if !valid {
		return nil, fmt.Errorf("cannot move order from %s to %s: %w", order.Status, newStatus, ErrConflict)
	}

	order.Status = newStatus
	if newStatus == models.OrderStatusCompleted && order.PickedUpAt == nil {
		t := s.now()
		order.PickedUpAt = &t
	}

	if err := s.Repo.UpdateOrderStatus(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
