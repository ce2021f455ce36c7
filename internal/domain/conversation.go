package domain

import (
	"context"
	"time"
)

// Message sender tags.
const (
	SenderCandidate = "candidate"
	SenderSystem    = "system"
)

// Conversation is a thread scoping messages to a (candidate, job) pair, or a
// general thread when JobID is nil. Rows are immutable; duplicates are
// tolerated and lookups always take the newest match.
type Conversation struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	JobID       *int64    `json:"job_id,omitempty"`
	Channel     Channel   `json:"channel"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message is an immutable log entry. Only inbound candidate messages are
// logged; scripted outbound prompts are not persisted.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Sender         string    `json:"sender"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationRepository interface {
	// GetLatestByCandidateAndJob returns the newest conversation for the exact
	// (candidate, job) pair, nil when none exists.
	GetLatestByCandidateAndJob(ctx context.Context, candidateID, jobID int64) (*Conversation, error)
	// GetLatestByCandidate returns the candidate's newest conversation of any
	// job context, including null-job threads.
	GetLatestByCandidate(ctx context.Context, candidateID int64) (*Conversation, error)
	Create(ctx context.Context, conv *Conversation) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
}

// ConversationUsecase finds or creates the conversation an inbound message
// should be appended to.
type ConversationUsecase interface {
	// Locate returns the conversation id, or 0 when both lookup and creation
	// failed; callers must then skip message logging but still reply.
	Locate(ctx context.Context, candidateID int64, jobID *int64, channel Channel) int64
	// LogInbound appends a candidate message to a conversation, best effort.
	LogInbound(ctx context.Context, conversationID int64, body string)
}
