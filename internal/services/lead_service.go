package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/email"
	"github.com/demaceo/mhi/internal/models"
	"github.com/demaceo/mhi/internal/templates"
)

var (
	// ErrEmailNotConfigured means the mail transport (or business recipient)
	// is missing from process configuration. Mapped to a 500 configuration
	// error by the handler; no send is ever attempted in this state.
	ErrEmailNotConfigured = errors.New("email service not configured")

	// ErrDeliveryFailed means the business notification could not be
	// delivered. Fatal to the request.
	ErrDeliveryFailed = errors.New("failed to send email")
)

// ILeadService defines the interface for processing validated submissions.
type ILeadService interface {
	SubmitLead(ctx context.Context, sub models.Submission) error
}

// leadService implements ILeadService. The transport and clock are injected
// so tests can substitute stubs without process-wide singletons.
type leadService struct {
	cfg    *config.Config
	sender email.Sender
	now    func() time.Time
}

// NewLeadService creates a new LeadService. A nil sender is allowed and
// represents an unconfigured transport; submissions will fail with
// ErrEmailNotConfigured before any send attempt.
func NewLeadService(cfg *config.Config, sender email.Sender, now func() time.Time) ILeadService {
	if now == nil {
		now = time.Now
	}
	return &leadService{cfg: cfg, sender: sender, now: now}
}

// SubmitLead sends the business notification, then attempts the visitor
// confirmation. The business email must succeed; the confirmation is
// best-effort and its failure is deliberately discarded here (logged only),
// since the primary obligation of notifying the business has been met.
func (s *leadService) SubmitLead(ctx context.Context, sub models.Submission) error {
	if s.sender == nil {
		return fmt.Errorf("%w: no mail transport available", ErrEmailNotConfigured)
	}

	businessRecipient := s.cfg.BusinessRecipient()
	if businessRecipient == "" {
		return fmt.Errorf("%w: no business recipient available; set BUSINESS_EMAIL or a sender address", ErrEmailNotConfigured)
	}

	subject, html := templates.BuildBusinessEmail(sub, s.cfg.SiteBaseURL, s.now())
	err := s.sender.Send(ctx, models.EmailMessage{
		To:       businessRecipient,
		Subject:  subject,
		HTMLBody: html,
		ReplyTo:  sub.SubmitterEmail(),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	confirmSubject, confirmHTML := templates.BuildConfirmationEmail(sub, s.cfg.SiteBaseURL)
	if err := s.sender.Send(ctx, models.EmailMessage{
		To:       sub.SubmitterEmail(),
		Subject:  confirmSubject,
		HTMLBody: confirmHTML,
	}); err != nil {
		log.Printf("Confirmation email to %s failed (non-fatal): %v", sub.SubmitterEmail(), err)
	}

	log.Printf("Lead submitted successfully (variant: %s)", sub.Variant())
	return nil
}
