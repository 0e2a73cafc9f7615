package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demaceo/mhi/internal/forms"
	"github.com/demaceo/mhi/internal/services"
)

// maxBodyBytes bounds the submission payload well above the 5000-char message
// cap while keeping oversized junk out.
const maxBodyBytes = 64 * 1024

// ContactHandler handles the website form submission endpoint. Both form
// variants (contact and discovery) post here; the payload shape decides which
// validation path applies.
type ContactHandler struct {
	leadService services.ILeadService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(leadService services.ILeadService) *ContactHandler {
	return &ContactHandler{leadService: leadService}
}

// Submit handles POST /v1/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	result, err := forms.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}
	if !result.OK() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid form data",
			"details": result.ErrorMessages(),
		})
		return
	}

	if err := h.leadService.SubmitLead(c.Request.Context(), result.Submission); err != nil {
		switch {
		case errors.Is(err, services.ErrEmailNotConfigured):
			log.Printf("Lead submission rejected: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Email service not configured"})
		default:
			log.Printf("Lead submission failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
