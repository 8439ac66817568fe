package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toko-backend/internal/auth"
	"toko-backend/internal/client"
	"toko-backend/internal/config"
	"toko-backend/internal/logger"
	"toko-backend/internal/repository"
	"toko-backend/internal/server"
	"toko-backend/internal/service"
	"toko-backend/internal/storage"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	db, err := client.InitMysqlClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("init database", zap.Error(err))
	}

	store, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		log.Fatal("init object store", zap.Error(err))
	}

	verifier, err := auth.NewGoogleVerifier(ctx, &cfg.Google)
	if err != nil {
		log.Fatal("init google verifier", zap.Error(err))
	}

	midtransClient := client.NewMidtransClient(&cfg.Midtrans)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	authService := service.NewAuthService(userRepo, hasher, issuer, verifier)
	orderService := service.NewOrderService(db, orderRepo, cfg.Shipping)
	paymentService := service.NewPaymentService(db, midtransClient, orderRepo, paymentRepo)
	productService := service.NewProductService(productRepo, store)

	srv := server.NewServer(log, issuer, cfg.Storage, authService, orderService, paymentService, productService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
