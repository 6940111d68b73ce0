package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/repo"
	"github.com/janatafootwear/storefront/internal/service"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Repo     *repo.GormRepo
	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	Cart     *CartHTTP
	Discount *DiscountHTTP
	Orders   *OrderHTTP
	Wishlist *WishlistHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.OTPCode{},
		&models.ProductDiscount{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	r := &repo.GormRepo{DB: db}
	discountSvc := &service.DiscountService{Repo: r, IntN: func(int) int { return 5 }} // always offers 10
	cartSvc := &service.CartService{Repo: r, Discounts: discountSvc}
	orderSvc := &service.OrderService{Repo: r}
	catalogSvc := &service.CatalogService{Repo: r}
	wishlistSvc := &service.WishlistService{Repo: r}
	authSvc := &service.AuthService{
		Repo:        r,
		JWTSecret:   []byte("test-secret"),
		DemoOTP:     "123456",
		AdminPhones: []string{"1234567890"},
	}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		DB:       db,
		Repo:     r,
		Auth:     &AuthHTTP{Svc: authSvc},
		Catalog:  &CatalogHTTP{Svc: catalogSvc},
		Cart:     &CartHTTP{Svc: cartSvc},
		Discount: &DiscountHTTP{Svc: discountSvc},
		Orders:   &OrderHTTP{Svc: orderSvc, Cart: cartSvc},
		Wishlist: &WishlistHTTP{Svc: wishlistSvc},
	}
}

func (env *testEnv) doJSONRequest(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// asUser mimics what the auth middleware puts on the context.
func asUser(c echo.Context, id uuid.UUID, role string) {
	c.Set("user_id", id.String())
	c.Set("role", role)
}

func (env *testEnv) createProduct(name string, price int64, sizes ...string) *models.Product {
	env.T.Helper()

	p := &models.Product{
		Name:     name,
		Price:    price,
		Stock:    5,
		Category: "sneakers",
		Sizes:    models.StringList(sizes),
	}
	require.NoError(env.T, env.DB.Create(p).Error)
	return p
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
