package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-recruitment-chatbot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `id, phone_number, chat_id, name, language, languages_spoken, availability, experience, created_at`

func (r *candidateRepository) scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.PhoneNumber, &c.ChatID, &c.Name, &c.Language,
		&c.LanguagesSpoken, &c.Availability, &c.Experience, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) GetByPhoneNumber(ctx context.Context, phone string) (*domain.Candidate, error) {
	// Duplicates are tolerated; the newest row wins.
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE phone_number = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanCandidate(r.db.QueryRow(ctx, query, phone))
}

func (r *candidateRepository) GetByChatID(ctx context.Context, chatID string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE chat_id = $1 ORDER BY created_at DESC LIMIT 1`
	return r.scanCandidate(r.db.QueryRow(ctx, query, chatID))
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (phone_number, chat_id, name, created_at)
              VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		candidate.PhoneNumber, candidate.ChatID, candidate.Name,
	).Scan(&candidate.ID, &candidate.CreatedAt)
}

// settableColumns whitelists the columns SetField may touch; field names come
// from domain constants, never from user input, but the guard keeps the
// dynamic column name safe regardless.
var settableColumns = map[domain.OnboardingField]string{
	domain.FieldLanguage:        "language",
	domain.FieldName:            "name",
	domain.FieldLanguagesSpoken: "languages_spoken",
	domain.FieldAvailability:    "availability",
	domain.FieldExperience:      "experience",
}

func (r *candidateRepository) SetField(ctx context.Context, id int64, field domain.OnboardingField, value string) error {
	column, ok := settableColumns[field]
	if !ok {
		return fmt.Errorf("candidate field %q is not settable", field)
	}
	// The IS NULL guard enforces fill-once semantics at the row level.
	query := fmt.Sprintf(`UPDATE candidates SET %s = $1 WHERE id = $2 AND %s IS NULL`, column, column)
	_, err := r.db.Exec(ctx, query, value, id)
	return err
}
