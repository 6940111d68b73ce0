package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/events"
	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/service"
	"github.com/janatafootwear/storefront/internal/transport"
	"github.com/janatafootwear/storefront/internal/util"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Cart     *service.CartService
	Producer *events.Producer
}

func (h *OrderHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicOrderEvents, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_error", "error", err)
	}
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.checkout")

	uid, err := userID(c)
	if err != nil {
		l.Error("checkout_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		Name          string               `json:"name"`
		Phone         string               `json:"phone"`
		Email         string               `json:"email"`
		PaymentMethod models.PaymentMethod `json:"payment_method"`
		UPIID         string               `json:"upi_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("checkout_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	info := service.CustomerInfo{Name: req.Name, Phone: req.Phone, Email: req.Email}
	order, err := h.Svc.CreateOrder(ctx, uid, info, req.PaymentMethod, req.UPIID)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			l.Error("checkout_error", "status", status, "error", err)
			return c.JSON(status, "internal error")
		}
		l.Warn("checkout_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	// The order snapshot exists; emptying the cart afterwards also
	// resets the discount state of everything that was bought.
	if err := h.Cart.Clear(ctx, uid); err != nil {
		l.Error("checkout_cart_clear_error", "order_id", order.ID, "error", err)
	}

	l.Info("order_placed", "order_id", order.ID, "total", order.Total, "payment_method", order.PaymentMethod)
	h.publish(c, order.ID.String(), map[string]any{
		"type":     "order_placed",
		"order_id": order.ID,
		"user_id":  uid,
		"total":    order.Total,
		"status":   order.Status,
	})

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.list")

	uid, err := userID(c)
	if err != nil {
		l.Error("list_orders_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	// Admins get the full ledger; customers only their own orders.
	owner := &uid
	if role, _ := c.Get("role").(string); role == service.RoleAdmin {
		owner = nil
	}

	total, items, err := h.Svc.ListOrders(ctx, owner, offset, limit)
	if err != nil {
		l.Error("list_orders_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, transport.OrderPage{
		Data: items,
		Meta: transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	uid, err := userID(c)
	if err != nil {
		l.Error("get_order_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id is not a uuid")
	}

	order, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		status := statusFor(err)
		l.Warn("get_order_error", "status", status, "error", err)
		return c.JSON(status, "order not found")
	}

	role, _ := c.Get("role").(string)
	if order.UserID != uid && role != service.RoleAdmin {
		l.Warn("get_order_forbidden", "status", 404, "order_id", id)
		return c.JSON(http.StatusNotFound, "order not found")
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "id is not a uuid")
	}

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			l.Error("update_status_error", "status", status, "error", err)
			return c.JSON(status, "internal error")
		}
		l.Warn("update_status_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	l.Info("order_status_changed", "order_id", id, "new_status", req.Status)
	h.publish(c, id.String(), map[string]any{
		"type":     "order_status_changed",
		"order_id": id,
		"status":   req.Status,
	})

	return c.JSON(http.StatusOK, order)
}
