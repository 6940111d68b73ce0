package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// In-memory sqlite gives every connection its own database.
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

	return &repo.GormRepo{DB: db}
}

func createTestProduct(t *testing.T, r *repo.GormRepo, name string, price int64, sizes ...string) *models.Product {
	t.Helper()

	p := &models.Product{
		Name:     name,
		Price:    price,
		Stock:    10,
		Category: "sneakers",
		Sizes:    models.StringList(sizes),
	}
	require.NoError(t, r.DB.Create(p).Error)
	return p
}
