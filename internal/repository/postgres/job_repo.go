package postgres

import (
	"context"
	"errors"

	"go-recruitment-chatbot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, tags, created_at FROM jobs WHERE id = $1`
	var job domain.Job
	var tags []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, pq.Array(&tags), &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Tags = tags
	return &job, nil
}

// GetByIDWithEmployer retrieves a job together with the owning employer's
// display name for the deep-link greeting.
func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT
			j.id, j.employer_id, j.title, j.tags, j.created_at,
			COALESCE(e.name, 'Unknown Employer') as employer_name
		FROM jobs j
		LEFT JOIN employers e ON j.employer_id = e.id
		WHERE j.id = $1`

	var job domain.JobWithEmployer
	var tags []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, pq.Array(&tags), &job.CreatedAt,
		&job.EmployerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	job.Tags = tags
	return &job, nil
}
