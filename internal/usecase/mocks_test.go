package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-recruitment-chatbot/internal/domain"
	"go-recruitment-chatbot/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByPhoneNumber(ctx context.Context, phone string) (*domain.Candidate, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByChatID(ctx context.Context, chatID string) (*domain.Candidate, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) SetField(ctx context.Context, id int64, field domain.OnboardingField, value string) error {
	return m.Called(ctx, id, field, value).Error(0)
}

type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) GetLatestByCandidateAndJob(ctx context.Context, candidateID, jobID int64) (*domain.Conversation, error) {
	args := m.Called(ctx, candidateID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockConversationRepo) GetLatestByCandidate(ctx context.Context, candidateID int64) (*domain.Conversation, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}

func (m *MockConversationRepo) Create(ctx context.Context, conv *domain.Conversation) error {
	return m.Called(ctx, conv).Error(0)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) CheckExists(ctx context.Context, candidateID, jobID int64) (bool, error) {
	args := m.Called(ctx, candidateID, jobID)
	return args.Bool(0), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}

// MockSender records every outbound text for assertions.
type MockSender struct {
	mock.Mock
	Sent []string
}

func (m *MockSender) Send(ctx context.Context, recipient, text string) error {
	m.Sent = append(m.Sent, text)
	return m.Called(ctx, recipient, text).Error(0)
}

func newMockSenders(sender *MockSender) map[domain.Channel]domain.ChannelSender {
	return map[domain.Channel]domain.ChannelSender{
		domain.ChannelWhatsApp: sender,
		domain.ChannelTelegram: sender,
	}
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }
