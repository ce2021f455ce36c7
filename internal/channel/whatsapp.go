package channel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-recruitment-chatbot/config"
	"go-recruitment-chatbot/internal/domain"
)

// WhatsAppSender sends plain-text messages through the carrier's Messages
// endpoint. One best-effort API call per send, no retry, no rich content.
type WhatsAppSender struct {
	httpClient *http.Client
	apiBase    string
	accountSID string
	authToken  string
	fromNumber string
}

func NewWhatsAppSender(cfg *config.Config) *WhatsAppSender {
	return &WhatsAppSender{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBase:    cfg.WhatsAppAPIBase,
		accountSID: cfg.WhatsAppAccountSID,
		authToken:  cfg.WhatsAppAuthToken,
		fromNumber: cfg.WhatsAppFromNumber,
	}
}

// IsConfigured reports whether carrier credentials are present.
func (s *WhatsAppSender) IsConfigured() bool {
	return s.accountSID != "" && s.authToken != "" && s.fromNumber != ""
}

// Send posts a form-encoded message to the carrier API. The recipient is the
// raw transport identifier from the inbound webhook, prefix included.
func (s *WhatsAppSender) Send(ctx context.Context, recipient, text string) error {
	form := url.Values{}
	form.Set("From", s.fromNumber)
	form.Set("To", recipient)
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.apiBase, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp send failed: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

var _ domain.ChannelSender = (*WhatsAppSender)(nil)
