package forms

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/demaceo/mhi/internal/models"
)

// Message length bounds shared by both form variants.
const (
	ContactMessageMinLen = 10
	MessageMaxLen        = 5000
)

// emailRegexp is the same pragmatic grammar the client-side form applies:
// something@something.tld with no whitespace.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is one human-readable validation failure, keyed by the field
// name so the client can render inline errors.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Result is the discriminated outcome of validating a request body: either a
// typed Submission, or a non-empty ordered list of field errors.
type Result struct {
	Submission models.Submission
	Errors     []FieldError
}

// OK reports whether validation succeeded.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// ErrorMessages returns just the human-readable messages, in field order.
func (r Result) ErrorMessages() []string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return msgs
}

// payload is the superset of both form variants. Pointer fields distinguish
// "absent" from "present but empty", which drives variant discrimination and
// the non-empty collection checks.
type payload struct {
	Persona  *string   `json:"persona"`
	Goals    *[]string `json:"goals"`
	Services *[]string `json:"services"`
	Timeline *string   `json:"timeline"`
	Name     *string   `json:"name"`
	Email    *string   `json:"email"`
	Message  *string   `json:"message"`
}

// isDiscovery reports whether any discovery-only field is present.
func (p *payload) isDiscovery() bool {
	return p.Persona != nil || p.Goals != nil || p.Services != nil || p.Timeline != nil
}

// Parse validates a raw JSON request body against the submission contract.
// A malformed body returns a non-nil error; everything else is reported
// through the Result so the caller can distinguish parse failures from
// schema violations. Parse never panics and has no side effects.
func Parse(body []byte) (Result, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Result{}, fmt.Errorf("invalid JSON body: %w", err)
	}
	if p.isDiscovery() {
		return validateDiscovery(&p), nil
	}
	return validateContact(&p), nil
}

func validateContact(p *payload) Result {
	var errs []FieldError

	name := deref(p.Name)
	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}

	errs = appendEmailErrors(errs, p.Email)

	message := deref(p.Message)
	if strings.TrimSpace(message) == "" {
		errs = append(errs, FieldError{Field: "message", Message: "Message is required"})
	} else if len(message) < ContactMessageMinLen {
		errs = append(errs, FieldError{Field: "message", Message: fmt.Sprintf("Message must be at least %d characters", ContactMessageMinLen)})
	} else if len(message) > MessageMaxLen {
		errs = append(errs, FieldError{Field: "message", Message: fmt.Sprintf("Message must be at most %d characters", MessageMaxLen)})
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Submission: &models.ContactSubmission{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(deref(p.Email)),
		Message: message,
	}}
}

func validateDiscovery(p *payload) Result {
	var errs []FieldError

	persona := models.Persona(deref(p.Persona))
	if _, ok := models.PersonaLabels[persona]; !ok {
		errs = append(errs, FieldError{Field: "persona", Message: "Please select who you are"})
	}

	var goals []string
	if p.Goals != nil {
		goals = *p.Goals
	}
	if len(goals) == 0 {
		errs = append(errs, FieldError{Field: "goals", Message: "Please select at least one goal"})
	}

	var services []models.ServiceID
	if p.Services != nil {
		for _, raw := range *p.Services {
			svc := models.ServiceID(raw)
			if _, ok := models.ServiceLabels[svc]; !ok {
				errs = append(errs, FieldError{Field: "services", Message: fmt.Sprintf("Unknown service selection: %s", raw)})
				services = nil
				break
			}
			services = append(services, svc)
		}
	}
	if p.Services == nil || len(*p.Services) == 0 {
		errs = append(errs, FieldError{Field: "services", Message: "Please select at least one service"})
	}

	timeline := models.Timeline(deref(p.Timeline))
	if _, ok := models.TimelineLabels[timeline]; !ok {
		errs = append(errs, FieldError{Field: "timeline", Message: "Please select a timeline"})
	}

	errs = appendEmailErrors(errs, p.Email)

	message := deref(p.Message)
	if len(message) > MessageMaxLen {
		errs = append(errs, FieldError{Field: "message", Message: fmt.Sprintf("Message must be at most %d characters", MessageMaxLen)})
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Submission: &models.DiscoverySubmission{
		Persona:  persona,
		Goals:    goals,
		Services: services,
		Timeline: timeline,
		Name:     strings.TrimSpace(deref(p.Name)),
		Email:    strings.TrimSpace(deref(p.Email)),
		Message:  message,
	}}
}

// appendEmailErrors applies the shared email rules: required, then grammar.
func appendEmailErrors(errs []FieldError, email *string) []FieldError {
	value := strings.TrimSpace(deref(email))
	if value == "" {
		return append(errs, FieldError{Field: "email", Message: "Email is required"})
	}
	if !emailRegexp.MatchString(value) {
		return append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}
	return errs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
