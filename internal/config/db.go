package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
)

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// InitDB opens the session store. Without DATABASE_URL the store is an
// in-memory sqlite database, so all storefront state lives and dies
// with the process; a postgres URL makes it durable instead.
func (c *Config) InitDB(ctx context.Context) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	}

	var (
		db  *gorm.DB
		err error
	)
	if c.DatabaseURL == "" {
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormCfg)
	} else {
		db, err = gorm.Open(postgres.Open(c.DatabaseURL), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if c.DatabaseURL == "" {
		// A pooled in-memory sqlite connection would open fresh empty
		// databases; keep a single connection alive instead.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		configurePool(sqlDB)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			return nil, fmt.Errorf("ping session store: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.OTPCode{},
		&models.ProductDiscount{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate session store: %w", err)
	}

	return db, nil
}
