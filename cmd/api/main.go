package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"form-relay-backend/config"
	_ "form-relay-backend/docs" // Important for Swagger
	v1 "form-relay-backend/internal/delivery/http/v1"
	"form-relay-backend/internal/usecase"
	"form-relay-backend/pkg/email"
	"form-relay-backend/pkg/logger"
	"form-relay-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Form Relay API
// @version         1.0
// @description     Relays storefront form submissions (orders, configurator quotes, contact, devis) to the shop mailbox.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting form relay backend", "port", cfg.Port, "env", cfg.AppEnv)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Mail Transport
	transport, err := email.NewTransport(cfg)
	if err != nil {
		logger.Log.Error("Invalid mail transport", "error", err)
		os.Exit(1)
	}
	if smtpTransport, ok := transport.(*email.SMTPTransport); ok {
		defer smtpTransport.Close()
		if smtpTransport.Configured() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.SMTPTimeout)
			if err := smtpTransport.Connect(ctx); err != nil {
				// First send will dial again
				logger.Log.Warn("SMTP connection check failed", "host", cfg.SMTPHost, "error", err)
			} else {
				logger.Log.Info("SMTP server ready", "host", cfg.SMTPHost)
			}
			cancel()
		}
	}

	emailService := email.NewEmailService(cfg, transport)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - form submissions will be rejected")
	}

	// 4. Setup UseCases
	validate := validation.New()
	renderer := email.NewRenderer(cfg.SanitizeHTML)

	checkoutUC := usecase.NewCheckoutUsecase(emailService, renderer, validate)
	configuratorUC := usecase.NewConfiguratorUsecase(emailService, renderer, validate)
	contactUC := usecase.NewContactUsecase(emailService, renderer, validate)
	quoteUC := usecase.NewQuoteUsecase(emailService, renderer, validate)
	healthUC := usecase.NewHealthUsecase(emailService)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CheckoutUC:     checkoutUC,
		ConfiguratorUC: configuratorUC,
		ContactUC:      contactUC,
		QuoteUC:        quoteUC,
		HealthUC:       healthUC,
		Config:         cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
