package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/events"
	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/service"
)

type DiscountHTTP struct {
	Svc      *service.DiscountService
	Producer *events.Producer
}

func (h *DiscountHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicDiscountEvents, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("event_publish_error", "error", err)
	}
}

func (h *DiscountHTTP) GetState(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discount.state")

	uid, err := userID(c)
	if err != nil {
		l.Error("discount_state_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}

	state, err := h.Svc.GetState(ctx, uid, productID)
	if err != nil {
		l.Error("discount_state_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, state)
}

func (h *DiscountHTTP) Spin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discount.spin")

	uid, err := userID(c)
	if err != nil {
		l.Error("discount_spin_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}

	state, err := h.Svc.Spin(ctx, uid, productID)
	if errors.Is(err, service.ErrSpinUnavailable) {
		// The wheel stays visible after accept/exhaustion, so clients
		// hitting this path get the state they should render instead of
		// a bare error string.
		l.Info("discount_spin_rejected", "product_id", productID, "phase", state.Phase)
		return c.JSON(http.StatusConflict, state)
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			l.Error("discount_spin_error", "status", status, "error", err)
			return c.JSON(status, "internal error")
		}
		l.Warn("discount_spin_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	l.Info("discount_spun", "product_id", productID, "discount", state.Discount, "attempts_used", state.AttemptsUsed)
	return c.JSON(http.StatusOK, state)
}

func (h *DiscountHTTP) Accept(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "discount.accept")

	uid, err := userID(c)
	if err != nil {
		l.Error("discount_accept_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, "invalid product id")
	}

	var req struct {
		Discount int `json:"discount"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("discount_accept_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	state, err := h.Svc.Accept(ctx, uid, productID, req.Discount)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			l.Error("discount_accept_error", "status", status, "error", err)
			return c.JSON(status, "internal error")
		}
		l.Warn("discount_accept_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	l.Info("discount_accepted", "product_id", productID, "discount", req.Discount)
	h.publish(c, productID.String(), map[string]any{
		"type":       "discount_accepted",
		"product_id": productID,
		"user_id":    uid,
		"discount":   req.Discount,
	})
	return c.JSON(http.StatusOK, state)
}
