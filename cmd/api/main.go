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

	"sportloods-backend/config"
	_ "sportloods-backend/docs" // Important for Swagger
	"sportloods-backend/internal/content"
	v1 "sportloods-backend/internal/delivery/http/v1"
	"sportloods-backend/internal/usecase"
	"sportloods-backend/pkg/audit"
	"sportloods-backend/pkg/email"
	"sportloods-backend/pkg/logger"
	"sportloods-backend/pkg/redis"
	"sportloods-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Sportloods Oost Contact API
// @version         1.0
// @description     Contact form relay for the Sportloods Oost website.
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	environment := "development"
	if cfg.IsProduction() {
		environment = "production"
	}
	auditLog := audit.New("sportloods-backend", environment)
	defer func() { _ = auditLog.Sync() }()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Load Content Document
	doc, err := content.Load(cfg.ContentPath)
	if err != nil {
		logger.Log.Error("Failed to load content document", "error", err)
		os.Exit(1)
	}

	// 4. Setup Mail Transport
	mailer, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to setup mail transport", "error", err)
		os.Exit(1)
	}
	if !mailer.IsConfigured() {
		logger.Log.Warn("Mail transport not fully configured - contact form will fail", "transport", cfg.MailTransport)
	}

	// 5. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(context.Background(), redis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting falls back to memory", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 6. Setup UseCases
	validate := validation.New(doc.HasSubject)
	contactUC := usecase.NewContactUsecase(mailer, validate, usecase.ContactSettings{
		From:           cfg.MailFrom,
		OwnerAddress:   cfg.ContactEmailTo,
		SiteName:       doc.Site.Name,
		DefaultSubject: doc.DefaultSubject(),
	}, auditLog)
	healthUC := usecase.NewHealthUsecase(mailer, redis.Pinger(redisClient))

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Content:   doc,
		Redis:     redisClient,
		Audit:     auditLog,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// In-flight submissions may still be waiting on the mail transport
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
