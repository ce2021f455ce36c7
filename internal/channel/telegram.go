package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-recruitment-chatbot/config"
	"go-recruitment-chatbot/internal/domain"
)

// TelegramSender sends plain-text messages via the bot API sendMessage call.
type TelegramSender struct {
	httpClient *http.Client
	apiBase    string
	botToken   string
}

func NewTelegramSender(cfg *config.Config) *TelegramSender {
	return &TelegramSender{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBase:    cfg.TelegramAPIBase,
		botToken:   cfg.TelegramBotToken,
	}
}

// IsConfigured reports whether a bot token is present.
func (s *TelegramSender) IsConfigured() bool {
	return s.botToken != ""
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// Send posts a sendMessage call to the bot API. The recipient is the
// stringified chat id.
func (s *TelegramSender) Send(ctx context.Context, recipient, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: recipient, Text: text})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.apiBase, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram send failed: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

var _ domain.ChannelSender = (*TelegramSender)(nil)
