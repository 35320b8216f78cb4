package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"flc_backend/internals/configs"
	database "flc_backend/internals/databases"
	classRepository "flc_backend/internals/features/classes/class/repository"
	savedRepository "flc_backend/internals/features/classes/saved_class/repository"
	paymentRepository "flc_backend/internals/features/payment/payments/repository"
	paymentService "flc_backend/internals/features/payment/payments/service"
	authService "flc_backend/internals/features/users/auth/service"
	userRepository "flc_backend/internals/features/users/user/repository"
	helper "flc_backend/internals/helpers"
	middlewares "flc_backend/internals/middlewares"
	routes "flc_backend/internals/route"
)

func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// 🔌 Mongo connect + indexes
	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := database.ConnectDB(bootCtx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		cancelBoot()
		log.Fatalf("❌ %v", err)
	}
	store.EnsureIndexes(bootCtx)
	cancelBoot()

	// Redis-backed limiter counters when configured, in-memory otherwise
	var limiterStorage fiber.Storage
	var redisStorage *database.RedisStorage
	if cfg.RedisAddr != "" {
		rs := database.NewRedisStorage(cfg.RedisAddr, cfg.RedisPassword)
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rs.Ping(pingCtx); err != nil {
			log.Printf("[WARN] redis %s unreachable, rate limiter stays in memory: %v", cfg.RedisAddr, err)
			_ = rs.Close()
		} else {
			log.Printf("✅ Redis connected at %s", cfg.RedisAddr)
			redisStorage = rs
			limiterStorage = rs
		}
		cancelPing()
	}

	gateway, err := paymentService.NewGateway(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("[INFO] payment provider: %s (%s)", cfg.PaymentProvider, cfg.PaymentCurrency)

	middlewares.SetupMiddlewares(app, cfg, limiterStorage)

	users := userRepository.NewMongoUserRepository(store.DB)
	saved := savedRepository.NewMongoSavedClassRepository(store.DB)

	// ✅ Routes
	routes.SetupRoutes(app, routes.Dependencies{
		Tokens:            authService.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenTTL),
		Users:             users,
		Classes:           classRepository.NewMongoClassRepository(store.DB),
		Saved:             saved,
		Payments:          paymentRepository.NewMongoPaymentRepository(store, saved, cfg.PaymentTransactions),
		Intents:           paymentService.NewPaymentService(gateway, cfg.PaymentCurrency),
		Store:             store,
		OpenRolePromotion: cfg.OpenRolePromotion,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ FLC listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup koneksi
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[ERROR] fiber shutdown: %v", err)
	}
	if err := store.Disconnect(ctx); err != nil {
		log.Printf("[ERROR] mongo disconnect: %v", err)
	}
	if redisStorage != nil {
		_ = redisStorage.Close()
	}
}
