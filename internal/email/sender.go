package email

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/demaceo/mhi/internal/models"
)

var (
	// ErrNotConfigured indicates missing transport credentials. It is raised
	// at construction time, before any send is attempted, and is distinct
	// from a delivery failure.
	ErrNotConfigured = errors.New("email transport not configured")

	// ErrSendFailed indicates a delivery failure from the underlying relay.
	// The wrapped detail never contains credentials.
	ErrSendFailed = errors.New("email send failed")
)

// Sender delivers one EmailMessage through an external relay. Implementations
// perform no retries; a single failed send is reported upward immediately and
// the caller decides whether it is fatal.
type Sender interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}

// headerValue flattens CR/LF out of a value destined for a message header.
// Header-bound fields carry user input (submitter name in the subject,
// reply-to address), and a raw newline there would let a submission smuggle
// extra headers into the message.
func headerValue(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// buildRawMessage assembles a complete RFC 822 message (headers + HTML body)
// for transports that need the wire form (Gmail, file logging).
func buildRawMessage(from string, msg models.EmailMessage, sentAt time.Time) []byte {
	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = from
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: Mile High Interface <%s>\r\n", headerValue(from)))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", headerValue(msg.To)))
	sb.WriteString(fmt.Sprintf("Reply-To: %s\r\n", headerValue(replyTo)))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", headerValue(msg.Subject)))
	sb.WriteString("Date: " + sentAt.Format(time.RFC1123Z) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(msg.HTMLBody)
	sb.WriteString("\r\n")

	return []byte(sb.String())
}

// LoggingSender is a development fallback that logs email details instead of
// delivering them. Selected with MAIL_PROVIDER=log.
type LoggingSender struct{}

// NewLoggingSender creates a sender that only logs.
func NewLoggingSender() Sender {
	return &LoggingSender{}
}

func (s *LoggingSender) Send(ctx context.Context, msg models.EmailMessage) error {
	log.Printf("--- Sending Email (Logged) ---")
	log.Printf("To: %s", msg.To)
	log.Printf("Reply-To: %s", msg.ReplyTo)
	log.Printf("Subject: %s", msg.Subject)
	log.Println("--- Body ---")
	log.Println(msg.HTMLBody)
	log.Println("--- End Email ---")
	return nil
}
