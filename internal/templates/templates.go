package templates

import (
	"fmt"
	"strings"
	"time"

	"github.com/demaceo/mhi/internal/htmlutil"
	"github.com/demaceo/mhi/internal/models"
)

// businessTimestampFormat is the fixed format for the "sent on" footer of the
// business notification. A single fixed zone keeps output deterministic and
// locale-independent.
const businessTimestampFormat = "January 2, 2006 at 3:04 PM MST"

// denver is the fixed display zone for business email timestamps. Falls back
// to a fixed UTC-7 zone when the host has no tzdata.
var denver = loadDenver()

func loadDenver() *time.Location {
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		return time.FixedZone("MST", -7*60*60)
	}
	return loc
}

// timelineColor returns the badge background for a timeline value in the
// business email: urgent red, soon amber, exploring gray.
func timelineColor(timeline models.Timeline) string {
	switch timeline {
	case models.TimelineUrgent:
		return "#ef4444"
	case models.TimelineSoon:
		return "#f59e0b"
	default:
		return "#6b7280"
	}
}

// BuildBusinessEmail renders the full-detail notification for the business
// inbox. All user-supplied fields are escaped exactly once here; callers
// must pass raw (unescaped) submissions. Output is byte-identical for
// identical inputs, including sentAt.
func BuildBusinessEmail(sub models.Submission, siteBaseURL string, sentAt time.Time) (subject, html string) {
	switch s := sub.(type) {
	case *models.DiscoverySubmission:
		return buildDiscoveryBusinessEmail(s, siteBaseURL, sentAt)
	case *models.ContactSubmission:
		return buildContactBusinessEmail(s, siteBaseURL, sentAt)
	default:
		// The forms package only produces the two variants above.
		return "", ""
	}
}

func buildDiscoveryBusinessEmail(s *models.DiscoverySubmission, siteBaseURL string, sentAt time.Time) (string, string) {
	personaLabel := htmlutil.EscapeHTML(s.PersonaLabel())
	timelineLabel := htmlutil.EscapeHTML(s.TimelineLabel())
	escapedEmail := htmlutil.EscapeHTML(s.Email)

	subject := fmt.Sprintf("New Lead: %s - %s", personaLabel, timelineLabel)

	var goalItems strings.Builder
	for _, goal := range s.Goals {
		fmt.Fprintf(&goalItems, `<li style="margin: 8px 0; color: #555;">%s</li>`, htmlutil.EscapeHTML(goal))
	}

	var serviceChips strings.Builder
	for _, label := range s.ServiceLabelList() {
		fmt.Fprintf(&serviceChips, `<span style="display: inline-block; background: #f0fdfa; color: #0891b2; padding: 6px 12px; border-radius: 6px; font-size: 14px; border: 1px solid #0891b2;">%s</span>`, htmlutil.EscapeHTML(label))
	}

	var b strings.Builder
	b.WriteString(documentOpen("New Lead - Discovery Form - Mile High Interface"))
	fmt.Fprintf(&b, `
  <div style="background: linear-gradient(135deg, #0891b2 0%%, #065f46 100%%); padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
    <h1 style="color: white; margin: 0; font-size: 24px;">New Lead Submission</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0;">Discovery Form - Mile High Interface</p>
  </div>
  <div style="background: #f0fdfa; padding: 25px; border-radius: 8px; border-left: 4px solid #0891b2; margin-bottom: 20px;">
    <h2 style="margin-top: 0; color: #0891b2; font-size: 18px;">Lead Profile</h2>
    <table style="width: 100%%; border-collapse: collapse;">
      <tr>
        <td style="padding: 10px 0; font-weight: 600; color: #555; width: 120px; vertical-align: top;">Type:</td>
        <td style="padding: 10px 0; color: #333;"><span style="display: inline-block; background: linear-gradient(135deg, #0891b2, #065f46); color: white; padding: 4px 12px; border-radius: 20px; font-size: 14px; font-weight: 500;">%s</span></td>
      </tr>
      <tr>
        <td style="padding: 10px 0; font-weight: 600; color: #555; vertical-align: top;">Email:</td>
        <td style="padding: 10px 0; color: #333;"><a href="mailto:%s" style="color: #0891b2; text-decoration: none; font-weight: 500;">%s</a></td>
      </tr>
      <tr>
        <td style="padding: 10px 0; font-weight: 600; color: #555; vertical-align: top;">Timeline:</td>
        <td style="padding: 10px 0; color: #333;"><span style="display: inline-block; background: %s; color: white; padding: 4px 12px; border-radius: 20px; font-size: 14px; font-weight: 500;">%s</span></td>
      </tr>
    </table>
  </div>
  <div style="background: white; padding: 25px; border-radius: 8px; border: 1px solid #e9ecef; margin-bottom: 20px;">
    <h3 style="margin-top: 0; color: #333; border-bottom: 2px solid #f1f3f4; padding-bottom: 10px;">Goals</h3>
    <ul style="margin: 0; padding-left: 20px;">%s</ul>
  </div>
  <div style="background: white; padding: 25px; border-radius: 8px; border: 1px solid #e9ecef; margin-bottom: 20px;">
    <h3 style="margin-top: 0; color: #333; border-bottom: 2px solid #f1f3f4; padding-bottom: 10px;">Services Interested In</h3>
    <div style="display: flex; flex-wrap: wrap; gap: 8px;">%s</div>
  </div>`,
		personaLabel, escapedEmail, escapedEmail, timelineColor(s.Timeline), timelineLabel,
		goalItems.String(), serviceChips.String())

	writeMessageSection(&b, s.Message)
	writeBusinessFooter(&b, siteBaseURL, sentAt)
	b.WriteString(documentClose())

	return subject, b.String()
}

func buildContactBusinessEmail(s *models.ContactSubmission, siteBaseURL string, sentAt time.Time) (string, string) {
	escapedName := htmlutil.EscapeHTML(s.Name)
	escapedEmail := htmlutil.EscapeHTML(s.Email)

	subject := fmt.Sprintf("New Contact Form Message from %s", escapedName)

	var b strings.Builder
	b.WriteString(documentOpen("New Message - Contact Form - Mile High Interface"))
	fmt.Fprintf(&b, `
  <div style="background: linear-gradient(135deg, #0891b2 0%%, #065f46 100%%); padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
    <h1 style="color: white; margin: 0; font-size: 24px;">New Contact Message</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0;">Contact Form - Mile High Interface</p>
  </div>
  <div style="background: #f0fdfa; padding: 25px; border-radius: 8px; border-left: 4px solid #0891b2; margin-bottom: 20px;">
    <table style="width: 100%%; border-collapse: collapse;">
      <tr>
        <td style="padding: 10px 0; font-weight: 600; color: #555; width: 120px; vertical-align: top;">Name:</td>
        <td style="padding: 10px 0; color: #333;">%s</td>
      </tr>
      <tr>
        <td style="padding: 10px 0; font-weight: 600; color: #555; vertical-align: top;">Email:</td>
        <td style="padding: 10px 0; color: #333;"><a href="mailto:%s" style="color: #0891b2; text-decoration: none; font-weight: 500;">%s</a></td>
      </tr>
    </table>
  </div>`, escapedName, escapedEmail, escapedEmail)

	writeMessageSection(&b, s.Message)
	writeBusinessFooter(&b, siteBaseURL, sentAt)
	b.WriteString(documentClose())

	return subject, b.String()
}

// BuildConfirmationEmail renders the friendly acknowledgment sent back to the
// submitter, echoing what was submitted with a call-to-action link.
func BuildConfirmationEmail(sub models.Submission, siteBaseURL string) (subject, html string) {
	subject = "Thank you for reaching out to Mile High Interface"

	var b strings.Builder
	b.WriteString(documentOpen("Thank you - Mile High Interface"))
	b.WriteString(`
  <div style="background: linear-gradient(135deg, #0891b2 0%, #065f46 100%); padding: 30px; border-radius: 10px; text-align: center; margin-bottom: 30px;">
    <h1 style="color: white; margin: 0; font-size: 24px;">Thank You!</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0;">Mile High Interface LLC</p>
  </div>
  <div style="padding: 25px;">
    <h2 style="color: #333; margin-top: 0;">We&#039;ve Received Your Information!</h2>
    <p style="color: #555; font-size: 16px;">Thank you for taking the time to tell us about yourself and your project. Our team will review your submission and reach out within 1-2 business days.</p>`)

	if s, ok := sub.(*models.DiscoverySubmission); ok {
		escapedGoals := make([]string, len(s.Goals))
		for i, goal := range s.Goals {
			escapedGoals[i] = htmlutil.EscapeHTML(goal)
		}
		escapedServices := make([]string, 0, len(s.Services))
		for _, label := range s.ServiceLabelList() {
			escapedServices = append(escapedServices, htmlutil.EscapeHTML(label))
		}
		fmt.Fprintf(&b, `
    <div style="background: #f0fdfa; padding: 20px; border-radius: 8px; border-left: 4px solid #0891b2; margin: 20px 0;">
      <h3 style="margin-top: 0; color: #0891b2;">Here&#039;s What You Shared:</h3>
      <ul style="margin: 0; padding-left: 20px; color: #555;">
        <li style="margin: 8px 0;"><strong>You are:</strong> %s</li>
        <li style="margin: 8px 0;"><strong>Your goals:</strong> %s</li>
        <li style="margin: 8px 0;"><strong>Services:</strong> %s</li>
        <li style="margin: 8px 0;"><strong>Timeline:</strong> %s</li>
      </ul>
    </div>`,
			htmlutil.EscapeHTML(s.PersonaLabel()),
			strings.Join(escapedGoals, ", "),
			strings.Join(escapedServices, ", "),
			htmlutil.EscapeHTML(s.TimelineLabel()))
	}

	fmt.Fprintf(&b, `
    <p style="color: #555;">In the meantime, feel free to explore our services and past work on our website. We&#039;re excited to learn more about your project!</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s/services" style="display: inline-block; background: linear-gradient(135deg, #0891b2 0%%, #065f46 100%%); color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-weight: 600;">Explore Our Services</a>
    </div>
    <p style="color: #555;">Best regards,<br><strong>The Mile High Interface Team</strong></p>
  </div>
  <div style="margin-top: 30px; padding: 20px; background: #f8f9fa; border-radius: 8px; text-align: center; border-top: 3px solid #0891b2;">
    <p style="margin: 0; color: #666; font-size: 14px;">Mile High Interface LLC<br>Colorado, USA</p>
    <p style="margin: 10px 0 0 0; color: #999; font-size: 12px;">This is an automated confirmation email.</p>
  </div>`, siteBaseURL)
	b.WriteString(documentClose())

	return subject, b.String()
}

// writeMessageSection renders the optional free-text message. The whole
// section is omitted when the message is absent, never rendered empty.
// white-space: pre-wrap preserves the submitter's newlines.
func writeMessageSection(b *strings.Builder, message string) {
	if message == "" {
		return
	}
	fmt.Fprintf(b, `
  <div style="background: white; padding: 25px; border-radius: 8px; border: 1px solid #e9ecef; margin-bottom: 20px;">
    <h3 style="margin-top: 0; color: #333; border-bottom: 2px solid #f1f3f4; padding-bottom: 10px;">Message</h3>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 6px; border-left: 3px solid #0891b2;">
      <p style="margin: 0; white-space: pre-wrap; line-height: 1.6; color: #555;">%s</p>
    </div>
  </div>`, htmlutil.EscapeHTML(message))
}

func writeBusinessFooter(b *strings.Builder, siteBaseURL string, sentAt time.Time) {
	fmt.Fprintf(b, `
  <div style="margin-top: 30px; padding: 20px; background: #f8f9fa; border-radius: 8px; text-align: center;">
    <p style="margin: 0; color: #666; font-size: 14px;">This lead was submitted via <a href="%s" style="color: #0891b2; text-decoration: none;">milehighinterface.com</a></p>
    <p style="margin: 5px 0 0 0; color: #999; font-size: 12px;">Sent on %s</p>
  </div>`, siteBaseURL, sentAt.In(denver).Format(businessTimestampFormat))
}

func documentOpen(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">`, title)
}

func documentClose() string {
	return "\n</body>\n</html>"
}
