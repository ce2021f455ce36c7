package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-recruitment-chatbot/config"
	"go-recruitment-chatbot/internal/channel"
	v1 "go-recruitment-chatbot/internal/delivery/http/v1"
	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/internal/repository/postgres"
	"go-recruitment-chatbot/internal/usecase"
	"go-recruitment-chatbot/pkg/database"
	"go-recruitment-chatbot/pkg/logger"
	"go-recruitment-chatbot/pkg/redis"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitment chatbot", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	conversationRepo := postgres.NewConversationRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)

	// 6. Setup Channel Senders
	whatsappSender := channel.NewWhatsAppSender(cfg)
	if !whatsappSender.IsConfigured() {
		logger.Log.Warn("WhatsApp sender not fully configured - outbound WhatsApp replies will fail")
	}
	telegramSender := channel.NewTelegramSender(cfg)
	if !telegramSender.IsConfigured() {
		logger.Log.Warn("Telegram sender not configured - outbound Telegram replies will fail")
	}
	senders := map[domain.Channel]domain.ChannelSender{
		domain.ChannelWhatsApp: whatsappSender,
		domain.ChannelTelegram: telegramSender,
	}

	// 7. Setup UseCases
	validate := validator.New()
	identityUC := usecase.NewIdentityUsecase(candidateRepo)
	conversationUC := usecase.NewConversationUsecase(conversationRepo, messageRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo)
	onboardingUC := usecase.NewOnboardingUsecase(candidateRepo, senders)
	webhookUC := usecase.NewWebhookUsecase(validate, identityUC, conversationUC, applicationUC, onboardingUC, jobRepo, senders)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		WebhookUC: webhookUC,
		Config:    cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
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
