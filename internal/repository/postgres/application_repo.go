package postgres

import (
	"context"

	"go-recruitment-chatbot/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	// ON CONFLICT DO NOTHING downgrades a lost check-then-insert race to a
	// no-op instead of a duplicate row.
	query := `INSERT INTO applications (candidate_id, job_id, status, source, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              ON CONFLICT (candidate_id, job_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, app.CandidateID, app.JobID, app.Status, app.Source)
	return err
}

func (r *applicationRepo) CheckExists(ctx context.Context, candidateID, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE candidate_id = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, candidateID, jobID).Scan(&exists)
	return exists, err
}
