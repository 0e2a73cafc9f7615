package forms_test

import (
	"strings"
	"testing"

	"github.com/demaceo/mhi/internal/forms"
	"github.com/demaceo/mhi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs []forms.FieldError) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := forms.Parse([]byte(`{"name": "Ada",`))
	assert.Error(t, err)
}

func TestParse_ContactValid(t *testing.T) {
	body := `{"name":"Ada","email":"ada@example.com","message":"Please build me an app for managing my small business inventory."}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.True(t, result.OK())

	sub, ok := result.Submission.(*models.ContactSubmission)
	require.True(t, ok)
	assert.Equal(t, models.VariantContact, sub.Variant())
	assert.Equal(t, "Ada", sub.Name)
	assert.Equal(t, "ada@example.com", sub.SubmitterEmail())
}

func TestParse_ContactAllInvalid(t *testing.T) {
	body := `{"name":"","email":"bad","message":"hi"}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())

	names := fieldNames(result.Errors)
	assert.GreaterOrEqual(t, len(names), 2)
	assert.Contains(t, names, "name")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "message")
}

func TestParse_ContactMissingEmail(t *testing.T) {
	body := `{"name":"Ada","message":"A long enough message."}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())
	assert.Contains(t, fieldNames(result.Errors), "email")
}

func TestParse_ContactInvalidEmailSyntax(t *testing.T) {
	body := `{"name":"Ada","email":"not-an-email","message":"A long enough message."}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())
	assert.Contains(t, fieldNames(result.Errors), "email")
}

func TestParse_ContactMessageTooLong(t *testing.T) {
	long := strings.Repeat("x", forms.MessageMaxLen+1)
	body := `{"name":"Ada","email":"ada@example.com","message":"` + long + `"}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())
	assert.Contains(t, fieldNames(result.Errors), "message")
}

func TestParse_DiscoveryValid(t *testing.T) {
	body := `{
		"persona": "startup-founder",
		"goals": ["Rapid prototyping", "Product-market fit"],
		"services": ["mvp", "web-app"],
		"timeline": "urgent",
		"email": "founder@example.com",
		"message": "We need a build partner."
	}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.True(t, result.OK(), "unexpected errors: %v", result.Errors)

	sub, ok := result.Submission.(*models.DiscoverySubmission)
	require.True(t, ok)
	assert.Equal(t, models.VariantDiscovery, sub.Variant())
	assert.Equal(t, models.PersonaStartupFounder, sub.Persona)
	assert.Equal(t, []models.ServiceID{models.ServiceMVP, models.ServiceWebApp}, sub.Services)
	assert.Equal(t, models.TimelineUrgent, sub.Timeline)
}

func TestParse_DiscoveryEmptyGoals(t *testing.T) {
	body := `{
		"persona": "entrepreneur",
		"goals": [],
		"services": ["mvp"],
		"timeline": "soon",
		"email": "a@b.co"
	}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())
	assert.Contains(t, fieldNames(result.Errors), "goals")
}

func TestParse_DiscoveryEmptyServices(t *testing.T) {
	body := `{
		"persona": "entrepreneur",
		"goals": ["Validate my concept"],
		"services": [],
		"timeline": "soon",
		"email": "a@b.co"
	}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())
	assert.Contains(t, fieldNames(result.Errors), "services")
}

func TestParse_DiscoveryUnknownEnumValues(t *testing.T) {
	body := `{
		"persona": "astronaut",
		"goals": ["g"],
		"services": ["time-travel"],
		"timeline": "yesterday",
		"email": "a@b.co"
	}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())

	names := fieldNames(result.Errors)
	assert.Contains(t, names, "persona")
	assert.Contains(t, names, "services")
	assert.Contains(t, names, "timeline")
}

func TestParse_DiscoveryOptionalMessageAndName(t *testing.T) {
	body := `{
		"persona": "investor",
		"goals": ["Due diligence support"],
		"services": ["consulting"],
		"timeline": "exploring",
		"email": "vc@fund.com"
	}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.True(t, result.OK())

	sub := result.Submission.(*models.DiscoverySubmission)
	assert.Empty(t, sub.Name)
	assert.Empty(t, sub.Message)
}

func TestParse_VariantDiscrimination(t *testing.T) {
	// Presence of any discovery-only field selects the discovery schema even
	// if the rest of the payload looks like a contact form.
	body := `{"name":"Ada","email":"ada@example.com","message":"A long enough message.","timeline":"soon"}`
	result, err := forms.Parse([]byte(body))
	require.NoError(t, err)
	require.False(t, result.OK())
	assert.Contains(t, fieldNames(result.Errors), "persona")
}
