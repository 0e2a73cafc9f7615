package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/demaceo/mhi/internal/models"
)

// Email kinds used for mock email keys, derived from the subject line. The
// service API's getTestEmail method looks captured emails up by kind.
const (
	KindLeadNotification = "lead_notification"
	KindLeadConfirmation = "lead_confirmation"
	KindUnknown          = "unknown"
)

// mockEmailTTL bounds how long a captured email waits to be fetched.
const mockEmailTTL = 5 * time.Minute

// RedisSender captures emails in Redis instead of delivering them. Enabled
// with MOCK_SERVICES=true so end-to-end tests can assert on what would have
// been sent.
type RedisSender struct {
	client *redis.Client
	from   string
}

// NewRedisSender creates a RedisSender.
func NewRedisSender(client *redis.Client, from string) Sender {
	return &RedisSender{client: client, from: from}
}

// MockEmailKey builds the Redis key a captured email is stored under.
func MockEmailKey(to, kind string) string {
	return fmt.Sprintf("mockemail:%s:%s", to, kind)
}

// classifyKind infers the email kind from its subject.
func classifyKind(subject string) string {
	switch {
	case strings.HasPrefix(subject, "New Lead:"), strings.HasPrefix(subject, "New Contact Form Message"):
		return KindLeadNotification
	case strings.HasPrefix(subject, "Thank you"):
		return KindLeadConfirmation
	default:
		return KindUnknown
	}
}

func (s *RedisSender) Send(ctx context.Context, msg models.EmailMessage) error {
	kind := classifyKind(msg.Subject)

	data := map[string]interface{}{
		"to":       msg.To,
		"from":     s.from,
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
		"body":     msg.HTMLBody,
		"kind":     kind,
		"sent_at":  time.Now().UTC().Format(time.RFC3339Nano),
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal email data: %w", err)
	}

	key := MockEmailKey(msg.To, kind)
	if err := s.client.Set(ctx, key, jsonData, mockEmailTTL).Err(); err != nil {
		return fmt.Errorf("failed to store email in Redis key '%s': %w", key, err)
	}

	log.Printf("Mock email stored in Redis key '%s' (To: %s, Subject: %s)", key, msg.To, msg.Subject)
	return nil
}
