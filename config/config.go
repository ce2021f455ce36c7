package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// WhatsApp carrier API (Twilio-style) credentials
	WhatsAppAccountSID string
	WhatsAppAuthToken  string
	WhatsAppFromNumber string
	WhatsAppAPIBase    string
	// Telegram bot API
	TelegramBotToken string
	TelegramAPIBase  string
	// Redis Configuration (webhook rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitWebhookThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; ignored in production
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// WhatsApp carrier credentials
		WhatsAppAccountSID: getEnv("WHATSAPP_ACCOUNT_SID", ""),
		WhatsAppAuthToken:  getEnv("WHATSAPP_AUTH_TOKEN", ""),
		WhatsAppFromNumber: getEnv("WHATSAPP_FROM_NUMBER", ""),
		WhatsAppAPIBase:    strings.TrimRight(getEnv("WHATSAPP_API_BASE", "https://api.twilio.com"), "/"),
		// Telegram bot credentials
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAPIBase:  strings.TrimRight(getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"), "/"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitWebhookThreshold: getEnvInt("RATE_LIMIT_WEBHOOK_THRESHOLD", 120),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.WhatsAppAccountSID == "" || cfg.WhatsAppAuthToken == "" {
		log.Println("WARNING: WhatsApp carrier credentials not configured. Outbound WhatsApp replies will fail.")
	}
	if cfg.TelegramBotToken == "" {
		log.Println("WARNING: TELEGRAM_BOT_TOKEN not configured. Outbound Telegram replies will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
