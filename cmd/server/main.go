package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lodfresh/customer-service/config"
	"github.com/lodfresh/customer-service/pkg/broker"
	"github.com/lodfresh/customer-service/pkg/cache"
	"github.com/lodfresh/customer-service/pkg/db/postgres"
	"github.com/lodfresh/customer-service/pkg/logger"
	"github.com/lodfresh/customer-service/pkg/notify"

	custH "github.com/lodfresh/customer-service/internal/customer/handler"
	custRepoPkg "github.com/lodfresh/customer-service/internal/customer/repository"
	custUCPkg "github.com/lodfresh/customer-service/internal/customer/usecase"

	ingestH "github.com/lodfresh/customer-service/internal/ingest/handler"
	ingestRepoPkg "github.com/lodfresh/customer-service/internal/ingest/repository"
	ingestUCPkg "github.com/lodfresh/customer-service/internal/ingest/usecase"

	itemH "github.com/lodfresh/customer-service/internal/item/handler"
	itemListenerPkg "github.com/lodfresh/customer-service/internal/item/listener"
	itemRepoPkg "github.com/lodfresh/customer-service/internal/item/repository"
	itemUCPkg "github.com/lodfresh/customer-service/internal/item/usecase"

	orderH "github.com/lodfresh/customer-service/internal/order/handler"
	orderRepoPkg "github.com/lodfresh/customer-service/internal/order/repository"
	orderUCPkg "github.com/lodfresh/customer-service/internal/order/usecase"
	orderItemRepoPkg "github.com/lodfresh/customer-service/internal/orderitem/repository"

	"github.com/lodfresh/customer-service/internal/pricelist"
	plH "github.com/lodfresh/customer-service/internal/pricelist/handler"
	plUCPkg "github.com/lodfresh/customer-service/internal/pricelist/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
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
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	custRepo := custRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	orderItemRepo := orderItemRepoPkg.NewPGRepository(db)
	itemRepo := itemRepoPkg.NewPGRepository(db)
	importRepo := ingestRepoPkg.NewPGRepository(db, appLogger)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		// The price list falls back to recomputing on every request.
		appLogger.Warn("Could not connect to Redis, caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5.5 Initialize Kafka
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.CommandsTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()

	kafkaProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.CommandsTopic,
	})
	defer kafkaProducer.Close()
	appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.CommandsTopic))

	// 5.8 Initialize Telegram notifier
	var notifier plUCPkg.Notifier
	telegramClient, err := notify.NewTelegramClient(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Warn("Telegram notifier disabled", zap.Error(err))
	} else {
		notifier = telegramClient
	}

	// 6. Initialize UseCases
	custUC := custUCPkg.NewCustomerUseCase(custRepo, orderRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, orderItemRepo, custRepo, itemRepo, appLogger)
	itemUC := itemUCPkg.NewItemUseCase(itemRepo, redisClient, kafkaProducer, appLogger)
	ingestUC := ingestUCPkg.NewIngestUseCase(custRepo, importRepo, redisClient, appLogger)
	plUC := plUCPkg.NewPriceListUseCase(
		itemRepo,
		pricelist.DefaultRuleSet(),
		redisClient,
		time.Duration(cfg.PriceList.CacheTTLSeconds)*time.Second,
		notifier,
		appLogger,
	)

	// 6.5 Initialize Listeners
	itemListener := itemListenerPkg.NewItemCommandListener(kafkaConsumer, itemUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go itemListener.Start(ctx)

	// 7. Initialize Handlers and Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	custH.NewCustomerHandler(custUC, appLogger).Register(r)
	orderH.NewOrderHandler(orderUC, appLogger).Register(r)
	ingestH.NewIngestHandler(ingestUC, appLogger).Register(r)
	itemH.NewItemHandler(itemUC, appLogger).Register(r)
	plH.NewPriceListHandler(plUC, appLogger).Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
