package usecase

import (
	"context"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/pkg/logger"
)

type conversationUsecase struct {
	conversationRepo domain.ConversationRepository
	messageRepo      domain.MessageRepository
}

// NewConversationUsecase creates the conversation locator.
func NewConversationUsecase(
	conversationRepo domain.ConversationRepository,
	messageRepo domain.MessageRepository,
) domain.ConversationUsecase {
	return &conversationUsecase{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

// Locate finds or lazily creates the conversation an inbound message belongs
// to. With a job id the thread is scoped to that (candidate, job) pair;
// without one the candidate's newest thread of any job context is reused.
// Returns 0 when both lookup and creation fail: the caller skips message
// logging but still replies.
func (uc *conversationUsecase) Locate(ctx context.Context, candidateID int64, jobID *int64, channel domain.Channel) int64 {
	var existing *domain.Conversation
	var err error
	if jobID != nil {
		existing, err = uc.conversationRepo.GetLatestByCandidateAndJob(ctx, candidateID, *jobID)
	} else {
		existing, err = uc.conversationRepo.GetLatestByCandidate(ctx, candidateID)
	}
	if err != nil {
		logger.Log.Warn("conversation lookup failed",
			"candidate_id", candidateID, "error", err)
	}
	if existing != nil {
		return existing.ID
	}

	conv := &domain.Conversation{
		CandidateID: candidateID,
		JobID:       jobID,
		Channel:     channel,
	}
	if err := uc.conversationRepo.Create(ctx, conv); err != nil {
		logger.Log.Error("conversation create failed",
			"candidate_id", candidateID, "error", err)
		return 0
	}
	return conv.ID
}

// LogInbound persists a candidate message, best effort. Outbound scripted
// prompts are intentionally not logged.
func (uc *conversationUsecase) LogInbound(ctx context.Context, conversationID int64, body string) {
	if conversationID == 0 {
		return
	}
	msg := &domain.Message{
		ConversationID: conversationID,
		Sender:         domain.SenderCandidate,
		Body:           body,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		logger.Log.Warn("message log failed",
			"conversation_id", conversationID, "error", err)
	}
}
