package httpserver

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/janatafootwear/storefront/internal/middleware/auth"
	"github.com/janatafootwear/storefront/internal/service"
)

type Deps struct {
	Auth      *AuthHTTP
	Catalog   *CatalogHTTP
	Cart      *CartHTTP
	Discount  *DiscountHTTP
	Orders    *OrderHTTP
	Wishlist  *WishlistHTTP
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := auth.New(d.JWTSecret)

	a := e.Group("/auth")
	a.POST("/otp", d.Auth.RequestOTP)
	a.POST("/login", d.Auth.Login)

	e.GET("/profile", d.Auth.GetProfile, mw.RequireAuth)
	e.PATCH("/profile", d.Auth.UpdateProfile, mw.RequireAuth)

	products := e.Group("/products")
	products.GET("", d.Catalog.GetProducts)
	products.GET("/search", d.Catalog.SearchProducts)
	products.GET("/:id", d.Catalog.GetProduct)
	products.POST("", d.Catalog.CreateProduct, mw.AdminOnly)
	products.PATCH("/:id", d.Catalog.PatchProduct, mw.AdminOnly)
	products.DELETE("/:id", d.Catalog.DeleteProduct, mw.AdminOnly)

	products.GET("/:id/discount", d.Discount.GetState, mw.RequireAuth)
	products.POST("/:id/discount/spin", d.Discount.Spin, mw.RequireAuth)
	products.POST("/:id/discount/accept", d.Discount.Accept, mw.RequireAuth)

	cart := e.Group("/cart", mw.RequireAuth)
	cart.GET("", d.Cart.GetCart)
	cart.POST("/items", d.Cart.AddItem)
	cart.PATCH("/items", d.Cart.SetQuantity)
	cart.DELETE("/items", d.Cart.RemoveItem)
	cart.DELETE("", d.Cart.Clear)

	e.POST("/checkout", d.Orders.Checkout, mw.RequireAuth)
	orders := e.Group("/orders", mw.RequireAuth)
	orders.GET("", d.Orders.ListOrders)
	orders.GET("/:id", d.Orders.GetOrder)
	orders.PATCH("/:id/status", d.Orders.UpdateStatus, mw.AdminOnly)

	wishlist := e.Group("/wishlist", mw.RequireAuth)
	wishlist.GET("", d.Wishlist.List)
	wishlist.POST("/:productID", d.Wishlist.Toggle)
}

// userID pulls the authenticated user out of the echo context.
func userID(c echo.Context) (uuid.UUID, error) {
	v, ok := c.Get("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, errors.New("unauthorized")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, errors.New("unauthorized")
	}
	return id, nil
}

// statusFor maps service sentinels onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrSpinUnavailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
