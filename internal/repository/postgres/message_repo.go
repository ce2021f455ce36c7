package postgres

import (
	"context"

	"go-recruitment-chatbot/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (conversation_id, sender, body, created_at)
              VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, msg.ConversationID, msg.Sender, msg.Body).
		Scan(&msg.ID, &msg.CreatedAt)
}
