package models

// EmailMessage is one outbound email handed to a transport. Two are built per
// successful submission: the business notification and the visitor
// confirmation. Each send outcome is tracked separately by the caller.
type EmailMessage struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	ReplyTo  string `json:"reply_to,omitempty"` // Optional; defaults to the sender address
}
