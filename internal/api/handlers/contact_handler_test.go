package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/models"
	"github.com/demaceo/mhi/internal/services"
)

func setupContactRouter(leadSvc services.ILeadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewContactHandler(leadSvc)
	r.POST("/v1/contact", h.Submit)
	return r
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/v1/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var respBody map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	return respBody
}

const validDiscoveryBody = `{
	"persona": "entrepreneur",
	"goals": ["Launch a new product"],
	"services": ["mvp", "web-app"],
	"timeline": "urgent",
	"email": "ada@example.com",
	"message": "Looking forward to working together."
}`

func TestSubmit_MalformedJSON(t *testing.T) {
	mockSvc := new(MockLeadService)
	router := setupContactRouter(mockSvc)

	w := postJSON(router, `{"persona": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	respBody := decodeBody(t, w)
	assert.False(t, respBody["success"].(bool))
	assert.Equal(t, "Invalid request format", respBody["error"])
	mockSvc.AssertNotCalled(t, "SubmitLead")
}

func TestSubmit_ValidationFailure(t *testing.T) {
	mockSvc := new(MockLeadService)
	router := setupContactRouter(mockSvc)

	w := postJSON(router, `{"name":"","email":"bad","message":"hi"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	respBody := decodeBody(t, w)
	assert.False(t, respBody["success"].(bool))
	assert.Equal(t, "Invalid form data", respBody["error"])
	details := respBody["details"].([]interface{})
	assert.GreaterOrEqual(t, len(details), 2)
	mockSvc.AssertNotCalled(t, "SubmitLead")
}

func TestSubmit_NotConfigured(t *testing.T) {
	mockSvc := new(MockLeadService)
	mockSvc.On("SubmitLead", mock.Anything, mock.Anything).Return(services.ErrEmailNotConfigured)
	router := setupContactRouter(mockSvc)

	w := postJSON(router, validDiscoveryBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	respBody := decodeBody(t, w)
	assert.False(t, respBody["success"].(bool))
	assert.Equal(t, "Email service not configured", respBody["error"])
}

func TestSubmit_DeliveryFailure(t *testing.T) {
	mockSvc := new(MockLeadService)
	mockSvc.On("SubmitLead", mock.Anything, mock.Anything).Return(services.ErrDeliveryFailed)
	router := setupContactRouter(mockSvc)

	w := postJSON(router, validDiscoveryBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	respBody := decodeBody(t, w)
	assert.False(t, respBody["success"].(bool))
	assert.Equal(t, "Failed to send email", respBody["error"])
}

func TestSubmit_Success_Discovery(t *testing.T) {
	mockSvc := new(MockLeadService)
	mockSvc.On("SubmitLead", mock.Anything, mock.MatchedBy(func(sub models.Submission) bool {
		d, ok := sub.(*models.DiscoverySubmission)
		return ok && d.Persona == models.PersonaEntrepreneur && d.Email == "ada@example.com"
	})).Return(nil)
	router := setupContactRouter(mockSvc)

	w := postJSON(router, validDiscoveryBody)

	assert.Equal(t, http.StatusOK, w.Code)
	respBody := decodeBody(t, w)
	assert.True(t, respBody["success"].(bool))
	assert.Equal(t, "Email sent successfully", respBody["message"])
	mockSvc.AssertExpectations(t)
}

func TestSubmit_Success_Contact(t *testing.T) {
	mockSvc := new(MockLeadService)
	mockSvc.On("SubmitLead", mock.Anything, mock.MatchedBy(func(sub models.Submission) bool {
		cs, ok := sub.(*models.ContactSubmission)
		return ok && cs.Name == "Ada Lovelace"
	})).Return(nil)
	router := setupContactRouter(mockSvc)

	w := postJSON(router, `{"name":"Ada Lovelace","email":"ada@example.com","message":"I would like a website."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	respBody := decodeBody(t, w)
	assert.True(t, respBody["success"].(bool))
	mockSvc.AssertExpectations(t)
}

// Full-stack run through the real lead service with a mocked transport,
// checking recipients and send ordering end to end.
func TestSubmit_FullStack_SendsBothEmails(t *testing.T) {
	cfg := &config.Config{
		SiteBaseURL:   "https://milehighinterface.com",
		BusinessEmail: "leads@milehighinterface.com",
	}
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	leadSvc := services.NewLeadService(cfg, sender, func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	})
	router := setupContactRouter(leadSvc)

	w := postJSON(router, validDiscoveryBody)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.Sent, 2)
	assert.Equal(t, "leads@milehighinterface.com", sender.Sent[0].To)
	assert.Equal(t, "ada@example.com", sender.Sent[0].ReplyTo)
	assert.Equal(t, "ada@example.com", sender.Sent[1].To)
	assert.True(t, strings.HasPrefix(sender.Sent[0].Subject, "New Lead:"))
}

// Submitted markup must arrive escaped in the business email body.
func TestSubmit_FullStack_EscapesMessage(t *testing.T) {
	cfg := &config.Config{
		SiteBaseURL:   "https://milehighinterface.com",
		BusinessEmail: "leads@milehighinterface.com",
	}
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	leadSvc := services.NewLeadService(cfg, sender, nil)
	router := setupContactRouter(leadSvc)

	w := postJSON(router, `{"name":"Mallory","email":"mallory@example.com","message":"<script>alert('x')</script> hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.Sent, 2)
	body := sender.Sent[0].HTMLBody
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;")
}

// A failing transport must surface as a delivery error, and the confirmation
// must never be attempted after the business send fails.
func TestSubmit_FullStack_BusinessFailure(t *testing.T) {
	cfg := &config.Config{
		SiteBaseURL:   "https://milehighinterface.com",
		BusinessEmail: "leads@milehighinterface.com",
	}
	sender := new(MockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay down"))
	leadSvc := services.NewLeadService(cfg, sender, nil)
	router := setupContactRouter(leadSvc)

	w := postJSON(router, validDiscoveryBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	respBody := decodeBody(t, w)
	assert.Equal(t, "Failed to send email", respBody["error"])
	assert.Len(t, sender.Sent, 1)
}
