package httpserver

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/service"
	"github.com/janatafootwear/storefront/internal/transport"
)

func TestAuthFlowHTTP(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/otp", map[string]string{"phone": "9876543210"})
	require.NoError(t, env.Auth.RequestOTP(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, c = env.doJSONRequest(http.MethodPost, "/auth/login", map[string]string{"phone": "9876543210", "code": "123456"})
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeJSON[service.LoginResult](t, rec)
	require.NotEmpty(t, res.AccessToken)
	require.Equal(t, "9876543210", res.User.Phone)

	rec, c = env.doJSONRequest(http.MethodPost, "/auth/login", map[string]string{"phone": "9876543210", "code": "999999"})
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSpinEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	uid := uuid.New()
	p := env.createProduct("Nike Air Max 270", 2499, "9")

	spin := func() (*service.DiscountState, int) {
		rec, c := env.doJSONRequest(http.MethodPost, "/products/"+p.ID.String()+"/discount/spin", nil)
		asUser(c, uid, service.RoleCustomer)
		c.SetParamNames("id")
		c.SetParamValues(p.ID.String())
		require.NoError(t, env.Discount.Spin(c))
		if rec.Code != http.StatusOK && rec.Code != http.StatusConflict {
			return nil, rec.Code
		}
		state := decodeJSON[service.DiscountState](t, rec)
		return &state, rec.Code
	}

	for i := 1; i <= service.MaxAttempts; i++ {
		state, code := spin()
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, i, state.AttemptsUsed)
		require.Equal(t, 10, *state.Discount)
	}

	// Out of attempts: conflict, and the body is the state to render.
	// The last offer stays visible and acceptable.
	state, code := spin()
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, service.PhaseOffered, state.Phase)
	require.False(t, state.CanSpin)
	require.Equal(t, 10, *state.Discount)
}

func TestDiscountAcceptEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	uid := uuid.New()
	p := env.createProduct("Court Classic", 1299, "8")

	rec, c := env.doJSONRequest(http.MethodPost, "/products/"+p.ID.String()+"/discount/spin", nil)
	asUser(c, uid, service.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	require.NoError(t, env.Discount.Spin(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Claiming a value that was never offered fails.
	rec, c = env.doJSONRequest(http.MethodPost, "/products/"+p.ID.String()+"/discount/accept", map[string]int{"discount": 30})
	asUser(c, uid, service.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	require.NoError(t, env.Discount.Accept(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, c = env.doJSONRequest(http.MethodPost, "/products/"+p.ID.String()+"/discount/accept", map[string]int{"discount": 10})
	asUser(c, uid, service.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	require.NoError(t, env.Discount.Accept(c))
	require.Equal(t, http.StatusOK, rec.Code)

	state := decodeJSON[service.DiscountState](t, rec)
	require.Equal(t, service.PhaseAccepted, state.Phase)
}

func TestCartEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	uid := uuid.New()
	p := env.createProduct("Classic Leather Loafer", 1599, "9")

	rec, c := env.doJSONRequest(http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID.String(), "size": "9"})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Cart.AddItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.doJSONRequest(http.MethodGet, "/cart", nil)
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Cart.GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	view := decodeJSON[transport.CartView](t, rec)
	require.Len(t, view.Items, 1)
	require.EqualValues(t, 1599, view.Subtotal)
	require.EqualValues(t, 0, view.DeliveryFee)

	// Unknown size is a validation error.
	rec, c = env.doJSONRequest(http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID.String(), "size": "13"})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Cart.AddItem(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, c = env.doJSONRequest(http.MethodDelete, "/cart/items", map[string]string{"product_id": p.ID.String(), "size": "9"})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Cart.RemoveItem(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCheckoutEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	uid := uuid.New()
	p := env.createProduct("Trail Pro", 1999, "10")

	rec, c := env.doJSONRequest(http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID.String(), "size": "10"})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Cart.AddItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.doJSONRequest(http.MethodPost, "/checkout", map[string]string{
		"name":           "Asha",
		"phone":          "9876543210",
		"payment_method": "cash",
	})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Orders.Checkout(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	order := decodeJSON[models.Order](t, rec)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.EqualValues(t, 1999, order.Total)

	// Checkout empties the cart.
	rec, c = env.doJSONRequest(http.MethodGet, "/cart", nil)
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Cart.GetCart(c))
	view := decodeJSON[transport.CartView](t, rec)
	require.Empty(t, view.Items)

	// An empty cart cannot be checked out again.
	rec, c = env.doJSONRequest(http.MethodPost, "/checkout", map[string]string{
		"name":           "Asha",
		"phone":          "9876543210",
		"payment_method": "cash",
	})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Orders.Checkout(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderVisibility(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	alice, bob := uuid.New(), uuid.New()
	p := env.createProduct("Limited Drop", 4999, "8")

	rec, c := env.doJSONRequest(http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID.String(), "size": "8"})
	asUser(c, alice, service.RoleCustomer)
	require.NoError(t, env.Cart.AddItem(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, c = env.doJSONRequest(http.MethodPost, "/checkout", map[string]string{
		"name":           "Asha",
		"phone":          "9876543210",
		"payment_method": "cash",
	})
	asUser(c, alice, service.RoleCustomer)
	require.NoError(t, env.Orders.Checkout(c))
	order := decodeJSON[models.Order](t, rec)

	// The owner sees the order.
	rec, c = env.doJSONRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
	asUser(c, alice, service.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	require.NoError(t, env.Orders.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// Another customer does not.
	rec, c = env.doJSONRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
	asUser(c, bob, service.RoleCustomer)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	require.NoError(t, env.Orders.GetOrder(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// An admin does.
	rec, c = env.doJSONRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
	asUser(c, bob, service.RoleAdmin)
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	require.NoError(t, env.Orders.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	uid := uuid.New()
	p := env.createProduct("Everyday Slide", 699, "9")

	rec, c := env.doJSONRequest(http.MethodPost, "/cart/items", map[string]string{"product_id": p.ID.String(), "size": "9"})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Cart.AddItem(c))

	rec, c = env.doJSONRequest(http.MethodPost, "/checkout", map[string]string{
		"name":           "Asha",
		"phone":          "9876543210",
		"payment_method": "cash",
	})
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Orders.Checkout(c))
	order := decodeJSON[models.Order](t, rec)

	rec, c = env.doJSONRequest(http.MethodPatch, "/orders/"+order.ID.String()+"/status", map[string]string{"status": "confirmed"})
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	require.NoError(t, env.Orders.UpdateStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeJSON[models.Order](t, rec)
	require.Equal(t, models.OrderStatusConfirmed, updated.Status)

	// A skipped step is a conflict.
	rec, c = env.doJSONRequest(http.MethodPatch, "/orders/"+order.ID.String()+"/status", map[string]string{"status": "completed"})
	c.SetParamNames("id")
	c.SetParamValues(order.ID.String())
	require.NoError(t, env.Orders.UpdateStatus(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestWishlistEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	uid := uuid.New()
	p := env.createProduct("Pair A", 1000, "9")

	toggle := func() (transport.ToggleWishlistResponse, int) {
		rec, c := env.doJSONRequest(http.MethodPost, "/wishlist/"+p.ID.String(), nil)
		asUser(c, uid, service.RoleCustomer)
		c.SetParamNames("productID")
		c.SetParamValues(p.ID.String())
		require.NoError(t, env.Wishlist.Toggle(c))
		return decodeJSON[transport.ToggleWishlistResponse](t, rec), rec.Code
	}

	res, code := toggle()
	require.Equal(t, http.StatusOK, code)
	require.True(t, res.Wished)

	rec, c := env.doJSONRequest(http.MethodGet, "/wishlist", nil)
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Wishlist.List(c))
	products := decodeJSON[[]models.Product](t, rec)
	require.Len(t, products, 1)
	require.Equal(t, p.ID, products[0].ID)

	// Toggling again removes it.
	res, code = toggle()
	require.Equal(t, http.StatusOK, code)
	require.False(t, res.Wished)

	rec, c = env.doJSONRequest(http.MethodGet, "/wishlist", nil)
	asUser(c, uid, service.RoleCustomer)
	require.NoError(t, env.Wishlist.List(c))
	products = decodeJSON[[]models.Product](t, rec)
	require.Empty(t, products)
}

func TestProfileEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	user, err := env.Repo.FindOrCreateUser(context.Background(), "9876543210", service.RoleCustomer)
	require.NoError(t, err)

	rec, c := env.doJSONRequest(http.MethodPatch, "/profile", map[string]string{
		"name":  "Asha Rao",
		"email": "asha@example.com",
	})
	asUser(c, user.ID, service.RoleCustomer)
	require.NoError(t, env.Auth.UpdateProfile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeJSON[models.User](t, rec)
	require.Equal(t, "Asha Rao", updated.Name)
	require.Equal(t, "asha@example.com", updated.Email)

	rec, c = env.doJSONRequest(http.MethodGet, "/profile", nil)
	asUser(c, user.ID, service.RoleCustomer)
	require.NoError(t, env.Auth.GetProfile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON[models.User](t, rec)
	require.Equal(t, "Asha Rao", got.Name)
	require.Equal(t, "9876543210", got.Phone)

	// A blank name is refused.
	rec, c = env.doJSONRequest(http.MethodPatch, "/profile", map[string]string{"name": ""})
	asUser(c, user.ID, service.RoleCustomer)
	require.NoError(t, env.Auth.UpdateProfile(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	p := env.createProduct("Nike Air Max 270", 2499, "8", "9")

	rec, c := env.doJSONRequest(http.MethodGet, "/products/"+p.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	require.NoError(t, env.Catalog.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON[models.Product](t, rec)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.Name, got.Name)

	rec, c = env.doJSONRequest(http.MethodGet, "/products?page=1&size=10", nil)
	require.NoError(t, env.Catalog.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	page := decodeJSON[transport.ProductPage](t, rec)
	require.EqualValues(t, 1, page.Meta.Total)
	require.Len(t, page.Data, 1)

	rec, c = env.doJSONRequest(http.MethodGet, "/products/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, env.Catalog.GetProduct(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
