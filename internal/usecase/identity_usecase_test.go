package usecase_test

import (
	"context"
	"testing"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTelegramNameDerivation(t *testing.T) {
	resolve := func(event *domain.InboundEvent) *domain.Candidate {
		repo := new(MockCandidateRepo)
		repo.On("GetByChatID", mock.Anything, event.SenderID).Return(nil, nil)
		var created *domain.Candidate
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domain.Candidate)
			})
		uc := usecase.NewIdentityUsecase(repo)
		_, err := uc.Resolve(context.Background(), event)
		assert.NoError(t, err)
		return created
	}

	t.Run("First and last name are joined", func(t *testing.T) {
		created := resolve(&domain.InboundEvent{
			Channel: domain.ChannelTelegram, SenderID: "42",
			FirstName: "Ivana", LastName: "Horvat", Username: "ivanah",
		})
		assert.Equal(t, "Ivana Horvat", *created.Name)
		assert.Equal(t, "42", *created.ChatID)
		assert.Nil(t, created.PhoneNumber)
	})

	t.Run("Falls back to the platform username", func(t *testing.T) {
		created := resolve(&domain.InboundEvent{
			Channel: domain.ChannelTelegram, SenderID: "42", Username: "ivanah",
		})
		assert.Equal(t, "ivanah", *created.Name)
	})

	t.Run("No metadata leaves the name unset so onboarding asks for it", func(t *testing.T) {
		created := resolve(&domain.InboundEvent{
			Channel: domain.ChannelTelegram, SenderID: "42",
		})
		assert.Nil(t, created.Name)
	})
}

func TestWhatsAppResolveKeepsFromVerbatim(t *testing.T) {
	repo := new(MockCandidateRepo)
	repo.On("GetByPhoneNumber", mock.Anything, "whatsapp:+385911234567").Return(nil, nil)
	var created *domain.Candidate
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Candidate)
		})
	uc := usecase.NewIdentityUsecase(repo)

	_, err := uc.Resolve(context.Background(), whatsappEvent("hi"))
	assert.NoError(t, err)
	// The transport prefix on the carrier From field is retained.
	assert.Equal(t, "whatsapp:+385911234567", *created.PhoneNumber)
	assert.Nil(t, created.Name)
	assert.Nil(t, created.ChatID)
}

func TestResolveReturnsExistingCandidate(t *testing.T) {
	repo := new(MockCandidateRepo)
	existing := &domain.Candidate{ID: 8, PhoneNumber: strPtr("whatsapp:+385911234567")}
	repo.On("GetByPhoneNumber", mock.Anything, "whatsapp:+385911234567").Return(existing, nil)
	uc := usecase.NewIdentityUsecase(repo)

	got, err := uc.Resolve(context.Background(), whatsappEvent("hi"))
	assert.NoError(t, err)
	assert.Equal(t, existing, got)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
