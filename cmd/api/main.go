package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/samaansync/inventory-service/config"
	"github.com/samaansync/inventory-service/internal/auth"
	categoryHandler "github.com/samaansync/inventory-service/internal/category/handler"
	categoryRepository "github.com/samaansync/inventory-service/internal/category/repository"
	categoryUseCase "github.com/samaansync/inventory-service/internal/category/usecase"
	inventoryHandler "github.com/samaansync/inventory-service/internal/inventory/handler"
	inventoryRepository "github.com/samaansync/inventory-service/internal/inventory/repository"
	inventoryUseCase "github.com/samaansync/inventory-service/internal/inventory/usecase"
	pricingHandler "github.com/samaansync/inventory-service/internal/pricing/handler"
	pricingRepository "github.com/samaansync/inventory-service/internal/pricing/repository"
	pricingUseCase "github.com/samaansync/inventory-service/internal/pricing/usecase"
	productHandler "github.com/samaansync/inventory-service/internal/product/handler"
	productRepository "github.com/samaansync/inventory-service/internal/product/repository"
	productUseCase "github.com/samaansync/inventory-service/internal/product/usecase"
	storeHandler "github.com/samaansync/inventory-service/internal/store/handler"
	storeRepository "github.com/samaansync/inventory-service/internal/store/repository"
	storeUseCase "github.com/samaansync/inventory-service/internal/store/usecase"
	storeProductHandler "github.com/samaansync/inventory-service/internal/storeproduct/handler"
	storeProductRepository "github.com/samaansync/inventory-service/internal/storeproduct/repository"
	storeProductUseCase "github.com/samaansync/inventory-service/internal/storeproduct/usecase"
	supplierHandler "github.com/samaansync/inventory-service/internal/supplier/handler"
	supplierRepository "github.com/samaansync/inventory-service/internal/supplier/repository"
	supplierUseCase "github.com/samaansync/inventory-service/internal/supplier/usecase"
	transactionHandler "github.com/samaansync/inventory-service/internal/transaction/handler"
	transactionListener "github.com/samaansync/inventory-service/internal/transaction/listener"
	transactionRepository "github.com/samaansync/inventory-service/internal/transaction/repository"
	transactionUseCase "github.com/samaansync/inventory-service/internal/transaction/usecase"
	"github.com/samaansync/inventory-service/pkg/broker"
	"github.com/samaansync/inventory-service/pkg/cache"
	"github.com/samaansync/inventory-service/pkg/logger"
	"github.com/samaansync/inventory-service/pkg/postgres"
	"github.com/samaansync/inventory-service/pkg/search"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.LoadEnv()

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Postgres connection failed", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Postgres connected", zap.String("host", cfg.Postgres.Host))

	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Redis unavailable, caching and creation locks disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Elasticsearch unavailable, product search falls back to Postgres", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Elasticsearch connected")
	}

	authHandler, err := auth.NewAuthHandler(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize auth", zap.Error(err))
	}

	storeRepo := storeRepository.NewPGRepository(db)
	categoryRepo := categoryRepository.NewPGRepository(db)
	productRepo := productRepository.NewPGRepository(db)
	inventoryRepo := inventoryRepository.NewPGRepository(db)
	pricingRepo := pricingRepository.NewPGRepository(db)
	storeProductRepo := storeProductRepository.NewPGRepository(db)
	supplierRepo := supplierRepository.NewPGRepository(db)
	transactionRepo := transactionRepository.NewPGRepository(db)

	storeUC := storeUseCase.NewStoreUseCase(storeRepo, appLogger)
	categoryUC := categoryUseCase.NewCategoryUseCase(categoryRepo, appLogger)
	productUC := productUseCase.NewProductUseCase(productRepo, redisClient, esClient, appLogger)
	inventoryUC := inventoryUseCase.NewInventoryUseCase(inventoryRepo, redisClient, appLogger)
	pricingUC := pricingUseCase.NewPricingUseCase(pricingRepo, appLogger)
	storeProductUC := storeProductUseCase.NewStoreProductUseCase(storeProductRepo, appLogger)
	supplierUC := supplierUseCase.NewSupplierUseCase(supplierRepo, appLogger)
	transactionUC := transactionUseCase.NewMovementUseCase(transactionRepo, appLogger)

	if cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(appLogger))

	authGroup := router.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := router.Group("", auth.RequireToken(cfg.JWT.SecretKey))
	storeHandler.NewStoreHandler(storeUC, appLogger).RegisterRoutes(protected.Group("/stores"))
	categoryHandler.NewCategoryHandler(categoryUC, appLogger).RegisterRoutes(protected.Group("/productCategories"))
	productHandler.NewProductHandler(productUC, appLogger).RegisterRoutes(protected.Group("/products"))
	inventoryHandler.NewInventoryHandler(inventoryUC, appLogger).RegisterRoutes(protected.Group("/inventory"))
	pricingHandler.NewPricingHandler(pricingUC, appLogger).RegisterRoutes(protected.Group("/pricing"))
	storeProductHandler.NewStoreProductHandler(storeProductUC, appLogger).RegisterRoutes(protected.Group("/storeProducts"))
	supHandler := supplierHandler.NewSupplierHandler(supplierUC, appLogger)
	supHandler.RegisterRoutes(protected.Group("/suppliers"))
	supHandler.RegisterOrderRoutes(protected.Group("/supplierOrderProducts"))
	transactionHandler.NewTransactionHandler(transactionUC, appLogger).RegisterRoutes(protected.Group("/productTransactions"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer consumer.Close()
	go transactionListener.NewOrderListener(consumer, transactionUC, appLogger).Start(ctx)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func requestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
