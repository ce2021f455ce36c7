package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job is read-only from this service's perspective; postings are managed by
// the employer dashboard.
type Job struct {
	ID         int64     `json:"id"`
	EmployerID int64     `json:"employer_id"`
	Title      string    `json:"title"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

// JobWithEmployer extends Job with the owning employer's display name, used
// in the deep-link greeting.
type JobWithEmployer struct {
	Job
	EmployerName string `json:"employer_name"`
}

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
}
