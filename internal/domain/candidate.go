package domain

import (
	"context"
	"time"
)

// OnboardingField identifies one collectable candidate field. The fields are
// filled strictly in the order listed by OnboardingFieldOrder and are never
// overwritten once set.
type OnboardingField string

const (
	FieldLanguage        OnboardingField = "language"
	FieldName            OnboardingField = "name"
	FieldLanguagesSpoken OnboardingField = "languages_spoken"
	FieldAvailability    OnboardingField = "availability"
	FieldExperience      OnboardingField = "experience"

	// FieldComplete is the absorbing pseudo-field once everything is filled.
	FieldComplete OnboardingField = "complete"
)

// OnboardingFieldOrder is the required fill order. Language comes first:
// every later prompt is rendered in the language chosen here.
var OnboardingFieldOrder = []OnboardingField{
	FieldLanguage,
	FieldName,
	FieldLanguagesSpoken,
	FieldAvailability,
	FieldExperience,
}

// Language codes stored on the candidate row.
const (
	LanguageCroatian = "hr"
	LanguageEnglish  = "en"
)

// Candidate is a job applicant reached over exactly one messaging transport:
// PhoneNumber is set for WhatsApp senders, ChatID for Telegram senders.
type Candidate struct {
	ID              int64     `json:"id"`
	PhoneNumber     *string   `json:"phone_number,omitempty"`
	ChatID          *string   `json:"chat_id,omitempty"`
	Name            *string   `json:"name,omitempty"`
	Language        *string   `json:"language,omitempty"`
	LanguagesSpoken *string   `json:"languages_spoken,omitempty"`
	Availability    *string   `json:"availability,omitempty"`
	Experience      *string   `json:"experience,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// FieldValue returns the current value of an onboarding field, nil if unfilled.
func (c *Candidate) FieldValue(field OnboardingField) *string {
	switch field {
	case FieldLanguage:
		return c.Language
	case FieldName:
		return c.Name
	case FieldLanguagesSpoken:
		return c.LanguagesSpoken
	case FieldAvailability:
		return c.Availability
	case FieldExperience:
		return c.Experience
	}
	return nil
}

// PreferredLanguage returns the candidate's chosen language, defaulting to
// Croatian while the language step is still pending.
func (c *Candidate) PreferredLanguage() string {
	if c.Language != nil && *c.Language != "" {
		return *c.Language
	}
	return LanguageCroatian
}

type CandidateRepository interface {
	GetByPhoneNumber(ctx context.Context, phone string) (*Candidate, error)
	GetByChatID(ctx context.Context, chatID string) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	// SetField fills a still-null onboarding column. Implementations must not
	// overwrite an already-set value.
	SetField(ctx context.Context, id int64, field OnboardingField, value string) error
}

// IdentityUsecase maps an inbound transport identifier to a candidate.
type IdentityUsecase interface {
	// Lookup finds an existing candidate, (nil, nil) for unknown senders.
	Lookup(ctx context.Context, event *InboundEvent) (*Candidate, error)
	// Resolve finds or creates the candidate for an inbound event.
	Resolve(ctx context.Context, event *InboundEvent) (*Candidate, error)
}
