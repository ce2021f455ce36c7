package domain

import "context"

// OnboardingUsecase drives the scripted intake flow. The current step is
// never stored: it is recomputed from the candidate row on every turn.
type OnboardingUsecase interface {
	// NextField returns the first unfilled field in the required order, or
	// FieldComplete once every field is set.
	NextField(candidate *Candidate) OnboardingField

	// Prompt sends the question for the candidate's current step without
	// consuming any input. Silent once the candidate is complete. Sends are
	// best effort; failures are logged, never returned.
	Prompt(ctx context.Context, candidate *Candidate, event *InboundEvent)

	// Advance treats the inbound text as the answer to the current step,
	// persists the field and sends the follow-up prompt (or the closing
	// thanks after the final field). Silent once the candidate is complete.
	Advance(ctx context.Context, candidate *Candidate, event *InboundEvent)
}
