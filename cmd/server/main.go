package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/janatafootwear/storefront/internal/config"
	"github.com/janatafootwear/storefront/internal/events"
	"github.com/janatafootwear/storefront/internal/httpserver"
	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/middleware/loggingmw"
	"github.com/janatafootwear/storefront/internal/repo"
	"github.com/janatafootwear/storefront/internal/search"
	"github.com/janatafootwear/storefront/internal/seed"
	"github.com/janatafootwear/storefront/internal/service"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := cfg.InitDB(initCtx)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	if cfg.SeedCatalog {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		n, err := seed.Run(seedCtx, db)
		cancel()
		if err != nil {
			log.Fatalf("seed error: %v", err)
		}
		if n > 0 {
			logger.Info("catalog_seeded", "products", n)
		}
	}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers)
		logger.Info("kafka_producer_enabled", "brokers", cfg.KafkaBrokers)
	}

	var es *elasticsearch.Client
	var indexer *search.Indexer
	if cfg.ESURL != "" {
		es, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		indexer = search.NewIndexer(es)
		logger.Info("search_enabled", "url", cfg.ESURL)
	}

	gormRepo := &repo.GormRepo{
		DB: db,
	}

	discountService := &service.DiscountService{
		Repo: gormRepo,
	}
	cartService := &service.CartService{
		Repo:      gormRepo,
		Discounts: discountService,
	}
	orderService := &service.OrderService{
		Repo: gormRepo,
	}
	catalogService := &service.CatalogService{
		Repo:    gormRepo,
		Indexer: indexer,
	}
	wishlistService := &service.WishlistService{
		Repo: gormRepo,
	}
	authService := &service.AuthService{
		Repo:        gormRepo,
		JWTSecret:   cfg.JWTSecret,
		DemoOTP:     cfg.DemoOTP,
		AdminPhones: cfg.AdminPhones,
	}

	httpserver.Register(e, &httpserver.Deps{
		Auth:      &httpserver.AuthHTTP{Svc: authService},
		Catalog:   &httpserver.CatalogHTTP{Svc: catalogService, ES: es, Producer: producer},
		Cart:      &httpserver.CartHTTP{Svc: cartService},
		Discount:  &httpserver.DiscountHTTP{Svc: discountService, Producer: producer},
		Orders:    &httpserver.OrderHTTP{Svc: orderService, Cart: cartService, Producer: producer},
		Wishlist:  &httpserver.WishlistHTTP{Svc: wishlistService},
		JWTSecret: cfg.JWTSecret,
	})

	go func() {
		logger.Info("server_starting", "port", cfg.ServerPort)
		if err := e.Start(":" + strconv.Itoa(cfg.ServerPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("server_stopping")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo_shutdown_error", "error", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka_close_error", "error", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	logger.Info("server_stopped")
}
