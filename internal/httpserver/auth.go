package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) RequestOTP(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.request_otp")

	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("request_otp_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.RequestOTP(ctx, req.Phone); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("request_otp_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, err.Error())
		}
		l.Error("request_otp_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("otp_requested")
	return c.JSON(http.StatusOK, map[string]string{"status": "otp sent"})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Phone string `json:"phone"`
		Code  string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("login_error", "status", 401, "error", err)
			return c.JSON(http.StatusUnauthorized, err.Error())
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	l.Info("login_success", "role", res.User.Role)
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHTTP) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.profile")

	uid, err := userID(c)
	if err != nil {
		l.Error("get_profile_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.Svc.Profile(ctx, uid)
	if err != nil {
		status := statusFor(err)
		l.Warn("get_profile_error", "status", status, "error", err)
		return c.JSON(status, "user not found")
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.update_profile")

	uid, err := userID(c)
	if err != nil {
		l.Error("update_profile_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_profile_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.UpdateProfile(ctx, uid, req.Name, req.Email)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			l.Error("update_profile_error", "status", status, "error", err)
			return c.JSON(status, "internal error")
		}
		l.Warn("update_profile_error", "status", status, "error", err)
		return c.JSON(status, err.Error())
	}

	l.Info("profile_updated")
	return c.JSON(http.StatusOK, user)
}
