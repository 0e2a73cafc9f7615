package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/demaceo/mhi/internal/models"
)

// CompositeSender fans one message out to multiple senders, typically the
// primary transport plus a file logger.
type CompositeSender struct {
	senders []Sender
}

// NewCompositeSender creates a CompositeSender. The concrete type is returned
// so callers can keep adding senders during wiring.
func NewCompositeSender(senders ...Sender) *CompositeSender {
	return &CompositeSender{senders: senders}
}

// AddSender registers an additional sender. Nil senders are ignored.
func (cs *CompositeSender) AddSender(sender Sender) {
	if sender != nil {
		cs.senders = append(cs.senders, sender)
	}
}

// Send delivers the message through every registered sender and aggregates
// any errors into one.
func (cs *CompositeSender) Send(ctx context.Context, msg models.EmailMessage) error {
	if len(cs.senders) == 0 {
		return fmt.Errorf("no senders configured in CompositeSender")
	}

	var allErrors []string
	for _, sender := range cs.senders {
		if err := sender.Send(ctx, msg); err != nil {
			allErrors = append(allErrors, err.Error())
		}
	}

	if len(allErrors) > 0 {
		return fmt.Errorf("composite email send failed: [ %s ]", strings.Join(allErrors, "; "))
	}
	return nil
}
