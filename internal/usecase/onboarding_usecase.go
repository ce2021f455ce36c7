package usecase

import (
	"context"
	"strings"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/pkg/logger"
)

type onboardingUsecase struct {
	candidateRepo domain.CandidateRepository
	senders       map[domain.Channel]domain.ChannelSender
}

// NewOnboardingUsecase creates the onboarding state machine.
func NewOnboardingUsecase(
	candidateRepo domain.CandidateRepository,
	senders map[domain.Channel]domain.ChannelSender,
) domain.OnboardingUsecase {
	return &onboardingUsecase{
		candidateRepo: candidateRepo,
		senders:       senders,
	}
}

// NextField returns the first unfilled field in the required order. The
// current step is implicit in the candidate row, recomputed every turn.
func (uc *onboardingUsecase) NextField(candidate *domain.Candidate) domain.OnboardingField {
	for _, field := range domain.OnboardingFieldOrder {
		if candidate.FieldValue(field) == nil {
			return field
		}
	}
	return domain.FieldComplete
}

// Prompt sends the question for the candidate's current step. Completed
// candidates receive nothing: the terminal state is a silent absorber.
func (uc *onboardingUsecase) Prompt(ctx context.Context, candidate *domain.Candidate, event *domain.InboundEvent) {
	switch field := uc.NextField(candidate); field {
	case domain.FieldComplete:
		return
	case domain.FieldLanguage:
		uc.send(ctx, event, welcomePrompt)
	default:
		uc.send(ctx, event, questions[candidate.PreferredLanguage()][field])
	}
}

// Advance consumes the inbound text as the answer to the current step. The
// language step only accepts its fixed token set and silently re-asks
// otherwise; every later step accepts any non-empty reply verbatim.
func (uc *onboardingUsecase) Advance(ctx context.Context, candidate *domain.Candidate, event *domain.InboundEvent) {
	field := uc.NextField(candidate)
	if field == domain.FieldComplete {
		return
	}

	if field == domain.FieldLanguage {
		lang, ok := languageTokens[strings.ToLower(strings.TrimSpace(event.Text))]
		if !ok {
			// Silent re-ask: no error reaches the candidate, no field moves.
			uc.send(ctx, event, welcomePrompt)
			return
		}
		if !uc.setField(ctx, candidate, domain.FieldLanguage, lang) {
			return
		}
		uc.Prompt(ctx, candidate, event)
		return
	}

	if strings.TrimSpace(event.Text) == "" {
		uc.Prompt(ctx, candidate, event)
		return
	}
	// Free-text answers are stored verbatim, untrimmed.
	if !uc.setField(ctx, candidate, field, event.Text) {
		return
	}
	if field == domain.FieldExperience {
		uc.send(ctx, event, closingThanks[candidate.PreferredLanguage()])
		return
	}
	uc.Prompt(ctx, candidate, event)
}

// setField persists the answer before the next prompt goes out. On failure
// the turn ends without a reply; the step is recomputed from the row next
// turn, so the question repeats.
func (uc *onboardingUsecase) setField(ctx context.Context, candidate *domain.Candidate, field domain.OnboardingField, value string) bool {
	if err := uc.candidateRepo.SetField(ctx, candidate.ID, field, value); err != nil {
		logger.Log.Warn("candidate field update failed",
			"candidate_id", candidate.ID, "field", string(field), "error", err)
		return false
	}
	v := value
	switch field {
	case domain.FieldLanguage:
		candidate.Language = &v
	case domain.FieldName:
		candidate.Name = &v
	case domain.FieldLanguagesSpoken:
		candidate.LanguagesSpoken = &v
	case domain.FieldAvailability:
		candidate.Availability = &v
	case domain.FieldExperience:
		candidate.Experience = &v
	}
	return true
}

func (uc *onboardingUsecase) send(ctx context.Context, event *domain.InboundEvent, text string) {
	sendBestEffort(ctx, uc.senders, event, text)
}
