package usecase

import (
	"context"
	"strings"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/pkg/apperror"
	"go-recruitment-chatbot/pkg/logger"
)

type identityUsecase struct {
	candidateRepo domain.CandidateRepository
}

// NewIdentityUsecase creates the identity resolver mapping transport
// identifiers to candidate rows.
func NewIdentityUsecase(candidateRepo domain.CandidateRepository) domain.IdentityUsecase {
	return &identityUsecase{candidateRepo: candidateRepo}
}

// Lookup finds the candidate for an inbound event without creating one.
// Returns (nil, nil) for unknown senders.
func (uc *identityUsecase) Lookup(ctx context.Context, event *domain.InboundEvent) (*domain.Candidate, error) {
	if event.SenderID == "" {
		return nil, apperror.BadRequest("missing sender identifier")
	}
	switch event.Channel {
	case domain.ChannelWhatsApp:
		return uc.candidateRepo.GetByPhoneNumber(ctx, event.SenderID)
	case domain.ChannelTelegram:
		return uc.candidateRepo.GetByChatID(ctx, event.SenderID)
	}
	return nil, apperror.BadRequest("unknown channel")
}

// Resolve returns the candidate for an inbound event, creating one on first
// contact. Creation failure is fatal for the webhook invocation; the upstream
// platform is expected to redeliver.
func (uc *identityUsecase) Resolve(ctx context.Context, event *domain.InboundEvent) (*domain.Candidate, error) {
	candidate, err := uc.Lookup(ctx, event)
	if err != nil {
		return nil, err
	}
	if candidate != nil {
		return candidate, nil
	}

	candidate = &domain.Candidate{}
	switch event.Channel {
	case domain.ChannelWhatsApp:
		// The carrier "From" field is kept verbatim, transport prefix included.
		// The carrier payload carries no display name.
		phone := event.SenderID
		candidate.PhoneNumber = &phone
	case domain.ChannelTelegram:
		chatID := event.SenderID
		candidate.ChatID = &chatID
		if name := derivedTelegramName(event); name != "" {
			candidate.Name = &name
		}
	}

	if err := uc.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, apperror.Internal(err)
	}
	logger.Log.Info("candidate created",
		"candidate_id", candidate.ID, "channel", string(event.Channel))
	return candidate, nil
}

// derivedTelegramName builds a best-effort display name from sender metadata:
// first + last name, falling back to the platform username.
func derivedTelegramName(event *domain.InboundEvent) string {
	name := strings.TrimSpace(strings.TrimSpace(event.FirstName) + " " + strings.TrimSpace(event.LastName))
	if name == "" {
		name = strings.TrimSpace(event.Username)
	}
	return name
}
