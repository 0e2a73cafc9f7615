package email

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/demaceo/mhi/internal/models"
)

// FileSender appends raw email messages to a log file. Enabled alongside the
// primary transport via LOG_EMAILS for local inspection of what was sent.
type FileSender struct {
	filePath string
	from     string
}

// NewFileSender creates a FileSender, ensuring the target directory exists.
func NewFileSender(filePath, from string) (Sender, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("email log file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for email log file '%s': %w", filepath.Dir(filePath), err)
	}
	return &FileSender{filePath: filePath, from: from}, nil
}

func (s *FileSender) Send(ctx context.Context, msg models.EmailMessage) error {
	now := time.Now()

	file, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open email log file: %w", err)
	}
	defer file.Close()

	entry := fmt.Sprintf("--- Email Logged at %s (To: %s, Subject: %s) ---\n",
		now.Format(time.RFC3339Nano), msg.To, msg.Subject)
	entryBytes := append([]byte(entry), buildRawMessage(s.from, msg, now)...)
	entryBytes = append(entryBytes, []byte("--- End Logged Email ---\n\n")...)

	if _, err := file.Write(entryBytes); err != nil {
		return fmt.Errorf("failed to write email to log file: %w", err)
	}

	log.Printf("FileSender: email to %s (Subject: %s) logged to %s", msg.To, msg.Subject, s.filePath)
	return nil
}
