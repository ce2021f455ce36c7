package usecase

import (
	"context"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/pkg/apperror"
	"go-recruitment-chatbot/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
}

// NewApplicationUsecase creates the application recorder.
func NewApplicationUsecase(applicationRepo domain.ApplicationRepository) domain.ApplicationUsecase {
	return &applicationUsecase{applicationRepo: applicationRepo}
}

// Record ensures exactly one application row per (candidate, job). A nil job
// id makes this a no-op: general onboarding is not tied to a posting.
func (uc *applicationUsecase) Record(ctx context.Context, candidateID int64, jobID *int64, channel domain.Channel) error {
	if jobID == nil {
		return nil
	}

	// Check for duplicate application. The insert additionally carries an
	// ON CONFLICT guard, so a lost race degrades to a no-op.
	exists, err := uc.applicationRepo.CheckExists(ctx, candidateID, *jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if exists {
		return nil
	}

	app := &domain.Application{
		CandidateID: candidateID,
		JobID:       *jobID,
		Status:      domain.ApplicationStatusPending,
		Source:      string(channel),
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("application recorded",
		"candidate_id", candidateID, "job_id", *jobID, "source", app.Source)
	return nil
}
