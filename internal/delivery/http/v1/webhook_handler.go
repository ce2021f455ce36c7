package v1

import (
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookUC domain.WebhookUsecase
}

// NewWebhookHandler registers the inbound webhook routes
func NewWebhookHandler(r *gin.RouterGroup, webhookUC domain.WebhookUsecase) {
	handler := &WebhookHandler{webhookUC: webhookUC}

	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/whatsapp", handler.HandleWhatsApp)
		webhooks.POST("/telegram", handler.HandleTelegram)
	}
}

// HandleWhatsApp processes a carrier webhook: a form-encoded body with the
// sender in From (kept verbatim, prefix included) and the text in Body.
// The ack is an empty 200; the carrier treats any 2xx as consumed.
func (h *WebhookHandler) HandleWhatsApp(c *gin.Context) {
	from := c.PostForm("From")
	body := c.PostForm("Body")

	if from == "" {
		// Some proxies forward the urlencoded payload under a content type
		// the form parser ignores; parse the raw body manually.
		raw, err := io.ReadAll(c.Request.Body)
		if err == nil && len(raw) > 0 {
			if values, perr := url.ParseQuery(string(raw)); perr == nil {
				from = values.Get("From")
				body = values.Get("Body")
			}
		}
	}

	if from == "" {
		c.Error(apperror.BadRequest("missing From field"))
		return
	}

	event := &domain.InboundEvent{
		Channel:  domain.ChannelWhatsApp,
		SenderID: from,
		Text:     body,
	}
	if err := h.webhookUC.HandleInbound(c.Request.Context(), event); err != nil {
		c.Error(err)
		return
	}
	c.String(http.StatusOK, "")
}

// telegramUpdate is the subset of the bot API update envelope this service
// consumes. Updates without a message (edits, callbacks, member events) are
// acked and ignored.
type telegramUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
		From *struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Username  string `json:"username"`
		} `json:"from"`
	} `json:"message"`
}

// HandleTelegram processes a bot API webhook update.
func (h *WebhookHandler) HandleTelegram(c *gin.Context) {
	var update telegramUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.Error(apperror.BadRequest("invalid update payload"))
		return
	}
	if update.Message == nil {
		c.Status(http.StatusOK)
		return
	}

	event := &domain.InboundEvent{
		Channel:  domain.ChannelTelegram,
		SenderID: strconv.FormatInt(update.Message.Chat.ID, 10),
		Text:     update.Message.Text,
	}
	if update.Message.From != nil {
		event.FirstName = update.Message.From.FirstName
		event.LastName = update.Message.From.LastName
		event.Username = update.Message.From.Username
	}

	if err := h.webhookUC.HandleInbound(c.Request.Context(), event); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusOK)
}
