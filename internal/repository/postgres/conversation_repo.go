package postgres

import (
	"context"
	"errors"

	"go-recruitment-chatbot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type conversationRepo struct {
	db *pgxpool.Pool
}

func NewConversationRepository(db *pgxpool.Pool) domain.ConversationRepository {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := row.Scan(&conv.ID, &conv.CandidateID, &conv.JobID, &conv.Channel, &conv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) GetLatestByCandidateAndJob(ctx context.Context, candidateID, jobID int64) (*domain.Conversation, error) {
	query := `SELECT id, candidate_id, job_id, channel, created_at FROM conversations
              WHERE candidate_id = $1 AND job_id = $2 ORDER BY created_at DESC LIMIT 1`
	return r.scanConversation(r.db.QueryRow(ctx, query, candidateID, jobID))
}

func (r *conversationRepo) GetLatestByCandidate(ctx context.Context, candidateID int64) (*domain.Conversation, error) {
	query := `SELECT id, candidate_id, job_id, channel, created_at FROM conversations
              WHERE candidate_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanConversation(r.db.QueryRow(ctx, query, candidateID))
}

func (r *conversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	query := `INSERT INTO conversations (candidate_id, job_id, channel, created_at)
              VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, conv.CandidateID, conv.JobID, conv.Channel).
		Scan(&conv.ID, &conv.CreatedAt)
}
