package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/service"
	"github.com/janatafootwear/storefront/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) Toggle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.toggle")

	uid, err := userID(c)
	if err != nil {
		l.Error("wishlist_toggle_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}

	added, err := h.Svc.Toggle(ctx, uid, productID)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			l.Error("wishlist_toggle_error", "status", status, "error", err)
			return c.JSON(status, "internal error")
		}
		l.Warn("wishlist_toggle_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	l.Info("wishlist_toggled", "product_id", productID, "added", added)
	return c.JSON(http.StatusOK, transport.ToggleWishlistResponse{ProductID: productID.String(), Wished: added})
}

func (h *WishlistHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.list")

	uid, err := userID(c)
	if err != nil {
		l.Error("wishlist_list_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	products, err := h.Svc.List(ctx, uid)
	if err != nil {
		l.Error("wishlist_list_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, products)
}
