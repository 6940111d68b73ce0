package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/service"
	"github.com/janatafootwear/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	uid, err := userID(c)
	if err != nil {
		l.Error("get_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Svc.GetLines(ctx, uid)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.NewCartView(items))
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	uid, err := userID(c)
	if err != nil {
		l.Error("add_to_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Size      string    `json:"size"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddItem(ctx, uid, req.ProductID, req.Size)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			l.Error("add_to_cart_error", "status", status, "error", err)
			return c.JSON(status, "internal error")
		}
		l.Warn("add_to_cart_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	l.Info("cart_item_added", "product_id", req.ProductID, "quantity", item.Quantity)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	uid, err := userID(c)
	if err != nil {
		l.Error("set_quantity_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Size      string    `json:"size"`
		Quantity  uint      `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("set_quantity_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, "product_id required")
	}

	item, err := h.Svc.SetQuantity(ctx, uid, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("set_quantity_not_found", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, "cart line not found")
		}
		l.Error("set_quantity_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	if item == nil {
		return c.JSON(http.StatusOK, "item removed")
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	uid, err := userID(c)
	if err != nil {
		l.Error("remove_from_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id"`
		Size      string    `json:"size"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, "product_id required")
	}

	if err := h.Svc.RemoveItem(ctx, uid, req.ProductID, req.Size); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_not_found", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, "cart line not found")
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_item_removed", "product_id", req.ProductID)
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) Clear(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	uid, err := userID(c)
	if err != nil {
		l.Error("clear_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	if err := h.Svc.Clear(ctx, uid); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart_cleared")
	return c.JSON(http.StatusOK, "cart cleared")
}
