package email

import (
	"context"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/models"
)

// PostmarkSender delivers email through Postmark's transactional API.
// Selected with MAIL_PROVIDER=postmark.
type PostmarkSender struct {
	client *postmark.Client
	from   string
}

// NewPostmarkSender validates the API tokens and sender identity before any
// send can be attempted.
func NewPostmarkSender(cfg *config.Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrNotConfigured)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SENDER_EMAIL is required", ErrNotConfigured)
	}

	return &PostmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:   cfg.SenderEmail,
	}, nil
}

func (s *PostmarkSender) Send(ctx context.Context, msg models.EmailMessage) error {
	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = s.from
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.from,
		To:       msg.To,
		ReplyTo:  replyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("%w: postmark error %d: %s", ErrSendFailed, resp.ErrorCode, resp.Message)
	}
	return nil
}
