package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/config"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/infrastructure/database/postgres"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/notification"
	"github.com/AyushiSrivastava11/VRV-Backend/internal/routes"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}
	if cfg.JWT.ActivationSecret == "" || cfg.JWT.AccessSecret == "" ||
		cfg.JWT.RefreshSecret == "" || cfg.JWT.CustomerSecret == "" {
		logger.Fatal("Token secrets are missing. Please set ACTIVATION_SECRET, ACCESS_TOKEN_SECRET, REFRESH_TOKEN_SECRET and CUSTOMER_TOKEN_SECRET environment variables.")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	mailer, err := notification.NewSMTPMailer(&cfg.SMTP)
	if err != nil {
		logger.Fatal("Failed to initialize mailer", zap.Error(err))
	}
	sms := notification.NewTwilioSender(&cfg.SMS)

	router, services := routes.SetupRoutes(cfg, db, mailer, sms)

	// Background cleanup of expired and revoked refresh tokens.
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go services.Staff.StartTokenCleanupJob(cleanupCtx, 1*time.Hour)

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	cleanupCancel()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Failed to shutdown server", zap.Error(err))
	}

	log.Println("Server exited properly")
}
