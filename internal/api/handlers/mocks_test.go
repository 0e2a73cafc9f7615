package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/demaceo/mhi/internal/models"
)

// --- Mocks shared by handler tests ---

// MockLeadService implements services.ILeadService.
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) SubmitLead(ctx context.Context, sub models.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// MockSender implements email.Sender and records what it was asked to send.
type MockSender struct {
	mock.Mock
	Sent []models.EmailMessage
}

func (m *MockSender) Send(ctx context.Context, msg models.EmailMessage) error {
	m.Sent = append(m.Sent, msg)
	args := m.Called(ctx, msg)
	return args.Error(0)
}
