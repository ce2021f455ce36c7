package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending = "pending"
)

// Application links a candidate to a job exactly once.
type Application struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	JobID       int64     `json:"job_id"`
	Status      string    `json:"status"`
	Source      string    `json:"source"` // channel the application arrived through
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	CheckExists(ctx context.Context, candidateID, jobID int64) (bool, error)
}

// ApplicationUsecase ensures exactly one application row per (candidate, job).
type ApplicationUsecase interface {
	// Record is a no-op when jobID is nil.
	Record(ctx context.Context, candidateID int64, jobID *int64, channel Channel) error
}
