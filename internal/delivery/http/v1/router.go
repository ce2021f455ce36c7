package v1

import (
	"net/http"
	"time"

	"go-recruitment-chatbot/config"
	"go-recruitment-chatbot/internal/delivery/http/middleware"
	"go-recruitment-chatbot/internal/delivery/http/response"
	"go-recruitment-chatbot/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	WebhookUC domain.WebhookUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	// Upstream platforms only ever POST; answer anything else with 405.
	r.HandleMethodNotAllowed = true

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Webhook routes, rate limited per source IP
	webhooks := v1.Group("")
	webhooks.Use(middleware.RateLimitMiddleware(middleware.WebhookRateLimitConfig(
		deps.Config.RateLimitWebhookThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	NewWebhookHandler(webhooks, deps.WebhookUC)

	return r
}
