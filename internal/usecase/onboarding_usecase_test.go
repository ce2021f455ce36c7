package usecase_test

import (
	"context"
	"testing"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func whatsappEvent(text string) *domain.InboundEvent {
	return &domain.InboundEvent{
		Channel:  domain.ChannelWhatsApp,
		SenderID: "whatsapp:+385911234567",
		Text:     text,
	}
}

func TestNextFieldOrder(t *testing.T) {
	uc := usecase.NewOnboardingUsecase(new(MockCandidateRepo), nil)

	cand := &domain.Candidate{ID: 1}
	assert.Equal(t, domain.FieldLanguage, uc.NextField(cand))

	cand.Language = strPtr(domain.LanguageEnglish)
	assert.Equal(t, domain.FieldName, uc.NextField(cand))

	cand.Name = strPtr("Ana")
	assert.Equal(t, domain.FieldLanguagesSpoken, uc.NextField(cand))

	cand.LanguagesSpoken = strPtr("hr, en")
	assert.Equal(t, domain.FieldAvailability, uc.NextField(cand))

	cand.Availability = strPtr("odmah")
	assert.Equal(t, domain.FieldExperience, uc.NextField(cand))

	cand.Experience = strPtr("3 godine u skladištu")
	assert.Equal(t, domain.FieldComplete, uc.NextField(cand))
}

func TestLanguageStep(t *testing.T) {
	t.Run("Unrecognized token re-sends the identical welcome and moves nothing", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

		cand := &domain.Candidate{ID: 1}
		uc.Advance(context.Background(), cand, whatsappEvent("maybe later"))
		uc.Advance(context.Background(), cand, whatsappEvent("què?"))

		repo.AssertNotCalled(t, "SetField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Len(t, sender.Sent, 2)
		assert.Equal(t, sender.Sent[0], sender.Sent[1])
		assert.Contains(t, sender.Sent[0], "Hrvatski")
		assert.Contains(t, sender.Sent[0], "English")
	})

	t.Run("Accepted tokens are case-insensitive and store the language code", func(t *testing.T) {
		cases := map[string]string{
			"1":        domain.LanguageCroatian,
			"HR":       domain.LanguageCroatian,
			"Hrvatski": domain.LanguageCroatian,
			"2":        domain.LanguageEnglish,
			"en":       domain.LanguageEnglish,
			"ENGLISH":  domain.LanguageEnglish,
		}
		for token, want := range cases {
			repo := new(MockCandidateRepo)
			repo.On("SetField", mock.Anything, int64(1), domain.FieldLanguage, want).Return(nil)
			sender := new(MockSender)
			sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
			uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

			cand := &domain.Candidate{ID: 1}
			uc.Advance(context.Background(), cand, whatsappEvent(token))

			repo.AssertExpectations(t)
			assert.Equal(t, want, *cand.Language, "token %q", token)
		}
	})

	t.Run("Choosing English asks the name question in English", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("SetField", mock.Anything, int64(1), domain.FieldLanguage, domain.LanguageEnglish).Return(nil)
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

		uc.Advance(context.Background(), &domain.Candidate{ID: 1}, whatsappEvent("2"))

		assert.Len(t, sender.Sent, 1)
		assert.Equal(t, "What is your name?", sender.Sent[0])
	})
}

func TestFreeTextSteps(t *testing.T) {
	t.Run("Name is stored verbatim", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("SetField", mock.Anything, int64(1), domain.FieldName, "Ana Kovačić").Return(nil)
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

		cand := &domain.Candidate{ID: 1, Language: strPtr(domain.LanguageCroatian)}
		uc.Advance(context.Background(), cand, whatsappEvent("Ana Kovačić"))

		repo.AssertExpectations(t)
		assert.Equal(t, "Ana Kovačić", *cand.Name)
		assert.Equal(t, domain.FieldLanguagesSpoken, uc.NextField(cand))
		// Follow-up question comes in the chosen language.
		assert.Equal(t, "Koje jezike govorite?", sender.Sent[0])
	})

	t.Run("Empty reply re-asks the current question without advancing", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

		cand := &domain.Candidate{ID: 1, Language: strPtr(domain.LanguageEnglish)}
		uc.Advance(context.Background(), cand, whatsappEvent("   "))

		repo.AssertNotCalled(t, "SetField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, []string{"What is your name?"}, sender.Sent)
	})

	t.Run("Final field triggers the closing thanks instead of another question", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("SetField", mock.Anything, int64(1), domain.FieldExperience, "5 godina na gradilištu").Return(nil)
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

		cand := &domain.Candidate{
			ID:              1,
			Language:        strPtr(domain.LanguageCroatian),
			Name:            strPtr("Ana"),
			LanguagesSpoken: strPtr("hr"),
			Availability:    strPtr("vikendi"),
		}
		uc.Advance(context.Background(), cand, whatsappEvent("5 godina na gradilištu"))

		assert.Len(t, sender.Sent, 1)
		assert.Contains(t, sender.Sent[0], "Hvala")
	})

	t.Run("Field update failure ends the turn without a reply", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("SetField", mock.Anything, int64(1), domain.FieldName, "Ana").Return(assert.AnError)
		sender := new(MockSender)
		uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

		cand := &domain.Candidate{ID: 1, Language: strPtr(domain.LanguageCroatian)}
		uc.Advance(context.Background(), cand, whatsappEvent("Ana"))

		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		assert.Nil(t, cand.Name)
	})
}

func TestTerminalState(t *testing.T) {
	complete := &domain.Candidate{
		ID:              1,
		Language:        strPtr(domain.LanguageEnglish),
		Name:            strPtr("Ana"),
		LanguagesSpoken: strPtr("hr, en"),
		Availability:    strPtr("weekdays"),
		Experience:      strPtr("warehouse"),
	}

	t.Run("Advance is silent once complete", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		sender := new(MockSender)
		uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

		uc.Advance(context.Background(), complete, whatsappEvent("hello again"))

		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "SetField", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Prompt is silent once complete", func(t *testing.T) {
		sender := new(MockSender)
		uc := usecase.NewOnboardingUsecase(new(MockCandidateRepo), newMockSenders(sender))

		uc.Prompt(context.Background(), complete, whatsappEvent(""))

		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSendFailureIsSwallowed(t *testing.T) {
	repo := new(MockCandidateRepo)
	repo.On("SetField", mock.Anything, int64(1), domain.FieldLanguage, domain.LanguageEnglish).Return(nil)
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	uc := usecase.NewOnboardingUsecase(repo, newMockSenders(sender))

	cand := &domain.Candidate{ID: 1}
	// Must not panic or surface the transport error; the field still advances.
	uc.Advance(context.Background(), cand, whatsappEvent("en"))
	assert.Equal(t, domain.LanguageEnglish, *cand.Language)
}
