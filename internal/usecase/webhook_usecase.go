package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/pkg/apperror"
	"go-recruitment-chatbot/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// applyKeyword is the manual fallback for the transport-native /start deep
// link; both are equivalent "apply to job" triggers.
const applyKeyword = "prijava"

type webhookUsecase struct {
	validate       *validator.Validate
	identityUC     domain.IdentityUsecase
	conversationUC domain.ConversationUsecase
	applicationUC  domain.ApplicationUsecase
	onboardingUC   domain.OnboardingUsecase
	jobRepo        domain.JobRepository
	senders        map[domain.Channel]domain.ChannelSender
}

// NewWebhookUsecase creates the command router, the single entry point per
// inbound webhook payload.
func NewWebhookUsecase(
	validate *validator.Validate,
	identityUC domain.IdentityUsecase,
	conversationUC domain.ConversationUsecase,
	applicationUC domain.ApplicationUsecase,
	onboardingUC domain.OnboardingUsecase,
	jobRepo domain.JobRepository,
	senders map[domain.Channel]domain.ChannelSender,
) domain.WebhookUsecase {
	return &webhookUsecase{
		validate:       validate,
		identityUC:     identityUC,
		conversationUC: conversationUC,
		applicationUC:  applicationUC,
		onboardingUC:   onboardingUC,
		jobRepo:        jobRepo,
		senders:        senders,
	}
}

// HandleInbound picks one of three paths: apply trigger (deep link or
// keyword), onboarding continuation for a known sender, or a static
// instructional reply for unknown senders. Only unrecoverable persistence
// failures bubble up; everything else degrades to a silent no-op so the
// webhook can still ack.
func (uc *webhookUsecase) HandleInbound(ctx context.Context, event *domain.InboundEvent) error {
	if err := uc.validate.Struct(event); err != nil {
		return apperror.BadRequest("invalid inbound event: " + err.Error())
	}

	if jobID, ok := parseApplyCommand(event.Text); ok {
		return uc.handleApply(ctx, event, jobID)
	}

	candidate, err := uc.identityUC.Lookup(ctx, event)
	if err != nil {
		// Lookup failure is not a creation failure; degrade to a silent ack
		// and let the platform redeliver.
		logger.Log.Error("candidate lookup failed",
			"channel", string(event.Channel), "error", err)
		return nil
	}
	if candidate == nil {
		// Unknown sender, unrecognized text: instruct, persist nothing.
		sendBestEffort(ctx, uc.senders, event, instructionsPrompt)
		return nil
	}

	conversationID := uc.conversationUC.Locate(ctx, candidate.ID, nil, event.Channel)
	uc.conversationUC.LogInbound(ctx, conversationID, event.Text)
	uc.onboardingUC.Advance(ctx, candidate, event)
	return nil
}

// handleApply runs the deep-link/apply path: resolve or create the candidate,
// scope a conversation to the job, record the application, greet, then fall
// through to the current onboarding question.
func (uc *webhookUsecase) handleApply(ctx context.Context, event *domain.InboundEvent, jobID *int64) error {
	candidate, err := uc.identityUC.Resolve(ctx, event)
	if err != nil {
		return err
	}

	var job *domain.JobWithEmployer
	if jobID != nil {
		job, err = uc.jobRepo.GetByIDWithEmployer(ctx, *jobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Stale or mistyped deep link: fall back to a general apply
				// rather than poisoning redelivery with a broken reference.
				logger.Log.Warn("apply referenced unknown job", "job_id", *jobID)
				jobID = nil
			} else {
				logger.Log.Warn("job lookup failed", "job_id", *jobID, "error", err)
				job = nil
			}
		}
	}

	conversationID := uc.conversationUC.Locate(ctx, candidate.ID, jobID, event.Channel)
	uc.conversationUC.LogInbound(ctx, conversationID, event.Text)

	if err := uc.applicationUC.Record(ctx, candidate.ID, jobID, event.Channel); err != nil {
		return err
	}

	if job != nil {
		sendBestEffort(ctx, uc.senders, event, jobWelcome(candidate, job))
	}
	uc.onboardingUC.Prompt(ctx, candidate, event)
	return nil
}

// parseApplyCommand recognizes the case-insensitive apply triggers:
// "/start <job-id>" and "PRIJAVA" / "PRIJAVA:<job-id>". The returned job id
// is nil for a bare trigger or an unparseable token.
func parseApplyCommand(text string) (*int64, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if lower == "/start" || strings.HasPrefix(lower, "/start ") {
		return parseJobToken(strings.TrimSpace(strings.TrimPrefix(lower, "/start"))), true
	}
	if lower == applyKeyword {
		return nil, true
	}
	if strings.HasPrefix(lower, applyKeyword+":") {
		return parseJobToken(strings.TrimSpace(strings.TrimPrefix(lower, applyKeyword+":"))), true
	}
	return nil, false
}

// parseJobToken extracts a numeric job id from a lowercased deep-link token,
// accepting both "42" and the "job-42" form the dashboard embeds in share
// links.
func parseJobToken(token string) *int64 {
	token = strings.TrimPrefix(token, "job-")
	if token == "" {
		return nil
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// sendBestEffort performs a single outbound send, logging failures and never
// surfacing them: the webhook always acks to prevent redelivery loops.
func sendBestEffort(ctx context.Context, senders map[domain.Channel]domain.ChannelSender, event *domain.InboundEvent, text string) {
	sender, ok := senders[event.Channel]
	if !ok {
		logger.Log.Error("no sender configured for channel", "channel", string(event.Channel))
		return
	}
	if err := sender.Send(ctx, event.SenderID, text); err != nil {
		logger.Log.Warn("outbound send failed",
			"channel", string(event.Channel), "recipient", event.SenderID, "error", err)
	}
}
