package domain

import "context"

// Channel tags which messaging transport an event or conversation belongs to.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
)

// InboundEvent is the normalized form of a webhook payload from either
// transport, consumed by the command router. SenderID is the transport-native
// identifier: the raw carrier "From" field for WhatsApp (kept verbatim,
// prefix included), the stringified chat id for Telegram.
type InboundEvent struct {
	Channel  Channel `validate:"required,oneof=whatsapp telegram"`
	SenderID string  `validate:"required"`
	Text     string

	// Sender metadata, only ever populated for Telegram.
	FirstName string
	LastName  string
	Username  string
}

// ChannelSender performs a single best-effort message send to a
// transport-native recipient identifier. No retry, no templating.
type ChannelSender interface {
	Send(ctx context.Context, recipient, text string) error
}

// WebhookUsecase is the single entry point per inbound webhook payload.
type WebhookUsecase interface {
	HandleInbound(ctx context.Context, event *InboundEvent) error
}
