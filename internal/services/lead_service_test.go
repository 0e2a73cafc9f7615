package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/models"
)

type stubSender struct {
	sent       []models.EmailMessage
	failOnSend int // 1-based index of the send call that should fail; 0 = never
	err        error
}

func (s *stubSender) Send(ctx context.Context, msg models.EmailMessage) error {
	s.sent = append(s.sent, msg)
	if s.failOnSend == len(s.sent) {
		return s.err
	}
	return nil
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{
		SiteBaseURL:   "https://milehighinterface.com",
		BusinessEmail: "leads@milehighinterface.com",
	}
}

func discoverySubmission() *models.DiscoverySubmission {
	return &models.DiscoverySubmission{
		Persona:  models.PersonaEntrepreneur,
		Goals:    []string{"Launch a new product"},
		Services: []models.ServiceID{models.ServiceMVP},
		Timeline: models.TimelineUrgent,
		Email:    "ada@example.com",
	}
}

func TestSubmitLead_SendsBothEmails(t *testing.T) {
	sender := &stubSender{}
	svc := NewLeadService(testConfig(), sender, fixedNow)

	err := svc.SubmitLead(context.Background(), discoverySubmission())
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	business := sender.sent[0]
	assert.Equal(t, "leads@milehighinterface.com", business.To)
	assert.Equal(t, "ada@example.com", business.ReplyTo)
	assert.Contains(t, business.Subject, "New Lead:")

	confirmation := sender.sent[1]
	assert.Equal(t, "ada@example.com", confirmation.To)
	assert.Equal(t, "Thank you for reaching out to Mile High Interface", confirmation.Subject)
	assert.Empty(t, confirmation.ReplyTo)
}

func TestSubmitLead_NilSender(t *testing.T) {
	svc := NewLeadService(testConfig(), nil, fixedNow)

	err := svc.SubmitLead(context.Background(), discoverySubmission())
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
}

func TestSubmitLead_NoBusinessRecipient(t *testing.T) {
	sender := &stubSender{}
	svc := NewLeadService(&config.Config{SiteBaseURL: "https://milehighinterface.com"}, sender, fixedNow)

	err := svc.SubmitLead(context.Background(), discoverySubmission())
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
	assert.Empty(t, sender.sent, "no send may be attempted without a recipient")
}

func TestSubmitLead_BusinessFailureIsFatal(t *testing.T) {
	sender := &stubSender{failOnSend: 1, err: errors.New("smtp down")}
	svc := NewLeadService(testConfig(), sender, fixedNow)

	err := svc.SubmitLead(context.Background(), discoverySubmission())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Len(t, sender.sent, 1, "confirmation must not be attempted after a business failure")
}

func TestSubmitLead_ConfirmationFailureIsNonFatal(t *testing.T) {
	sender := &stubSender{failOnSend: 2, err: errors.New("mailbox full")}
	svc := NewLeadService(testConfig(), sender, fixedNow)

	err := svc.SubmitLead(context.Background(), discoverySubmission())
	assert.NoError(t, err)
	assert.Len(t, sender.sent, 2)
}

func TestSubmitLead_ContactVariant(t *testing.T) {
	sender := &stubSender{}
	svc := NewLeadService(testConfig(), sender, fixedNow)

	err := svc.SubmitLead(context.Background(), &models.ContactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would like a website.",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "New Contact Form Message from Ada Lovelace", sender.sent[0].Subject)
}
