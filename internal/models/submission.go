package models

// FormVariant identifies which of the two site forms produced a submission.
// Both variants post to the same endpoint; the payload shape decides which
// one applies.
type FormVariant string

const (
	VariantContact   FormVariant = "contact"
	VariantDiscovery FormVariant = "discovery"
)

// Persona is the enumerated self-identification a visitor selects on the
// first step of the discovery form.
type Persona string

const (
	PersonaEntrepreneur   Persona = "entrepreneur"
	PersonaStartupFounder Persona = "startup-founder"
	PersonaSmallBusiness  Persona = "small-business"
	PersonaInvestor       Persona = "investor"
	PersonaProductManager Persona = "product-manager"
	PersonaVisionary      Persona = "visionary"
)

// ServiceID is an enumerated service the visitor can express interest in.
type ServiceID string

const (
	ServiceMVP         ServiceID = "mvp"
	ServiceWebApp      ServiceID = "web-app"
	ServiceMobileApp   ServiceID = "mobile-app"
	ServiceUIUX        ServiceID = "ui-ux"
	ServiceConsulting  ServiceID = "consulting"
	ServiceMaintenance ServiceID = "maintenance"
)

// Timeline is the enumerated urgency category.
type Timeline string

const (
	TimelineExploring Timeline = "exploring"
	TimelineSoon      Timeline = "soon"
	TimelineUrgent    Timeline = "urgent"
)

// PersonaLabels maps persona values to their human-readable display labels
// used in the generated emails.
var PersonaLabels = map[Persona]string{
	PersonaEntrepreneur:   "Entrepreneur",
	PersonaStartupFounder: "Startup Founder",
	PersonaSmallBusiness:  "Small Business Owner",
	PersonaInvestor:       "Investor",
	PersonaProductManager: "Product Manager",
	PersonaVisionary:      "Visionary",
}

// ServiceLabels maps service identifiers to display labels.
var ServiceLabels = map[ServiceID]string{
	ServiceMVP:         "MVP Development",
	ServiceWebApp:      "Web Application",
	ServiceMobileApp:   "Mobile App",
	ServiceUIUX:        "UI/UX Design",
	ServiceConsulting:  "Technical Consulting",
	ServiceMaintenance: "Maintenance & Support",
}

// TimelineLabels maps timeline values to display labels.
var TimelineLabels = map[Timeline]string{
	TimelineExploring: "Just Exploring",
	TimelineSoon:      "Ready to Start Soon (1-3 months)",
	TimelineUrgent:    "Urgent Need (Immediately)",
}

// Submission is the tagged union of the two form payload variants. A value is
// only constructed by the forms package after validation, so consumers can
// rely on its invariants (valid email, enum membership, non-empty sets).
type Submission interface {
	// Variant reports which form produced the submission.
	Variant() FormVariant
	// SubmitterEmail returns the validated email address of the visitor.
	SubmitterEmail() string
}

// ContactSubmission is the payload of the plain contact form.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *ContactSubmission) Variant() FormVariant   { return VariantContact }
func (s *ContactSubmission) SubmitterEmail() string { return s.Email }

// DiscoverySubmission is the payload of the multi-step discovery form.
// Name and Message are optional; the rest is validated against the closed
// sets above.
type DiscoverySubmission struct {
	Persona  Persona     `json:"persona"`
	Goals    []string    `json:"goals"`
	Services []ServiceID `json:"services"`
	Timeline Timeline    `json:"timeline"`
	Name     string      `json:"name,omitempty"`
	Email    string      `json:"email"`
	Message  string      `json:"message,omitempty"`
}

func (s *DiscoverySubmission) Variant() FormVariant   { return VariantDiscovery }
func (s *DiscoverySubmission) SubmitterEmail() string { return s.Email }

// PersonaLabel returns the display label for the submission's persona,
// falling back to the raw value for forward compatibility.
func (s *DiscoverySubmission) PersonaLabel() string {
	if label, ok := PersonaLabels[s.Persona]; ok {
		return label
	}
	return string(s.Persona)
}

// TimelineLabel returns the display label for the submission's timeline.
func (s *DiscoverySubmission) TimelineLabel() string {
	if label, ok := TimelineLabels[s.Timeline]; ok {
		return label
	}
	return string(s.Timeline)
}

// ServiceLabelList returns display labels for the selected services, in
// submission order.
func (s *DiscoverySubmission) ServiceLabelList() []string {
	labels := make([]string, 0, len(s.Services))
	for _, svc := range s.Services {
		if label, ok := ServiceLabels[svc]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, string(svc))
		}
	}
	return labels
}
