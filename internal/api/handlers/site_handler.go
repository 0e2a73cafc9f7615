package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demaceo/mhi/internal/config"
	"github.com/demaceo/mhi/internal/content"
)

// SiteHandler renders the static marketing pages from embedded templates.
type SiteHandler struct {
	cfg *config.Config
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(cfg *config.Config) *SiteHandler {
	return &SiteHandler{cfg: cfg}
}

func (h *SiteHandler) page(c *gin.Context, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["AppName"] = h.cfg.AppName
	data["SiteBaseURL"] = h.cfg.SiteBaseURL
	c.HTML(http.StatusOK, name, data)
}

// Home handles GET /.
func (h *SiteHandler) Home(c *gin.Context) {
	h.page(c, "home.tmpl", "Mile High Interface — Digital Product Studio", gin.H{
		"Services": content.Services,
	})
}

// About handles GET /about.
func (h *SiteHandler) About(c *gin.Context) {
	h.page(c, "about.tmpl", "About — Mile High Interface", nil)
}

// Services handles GET /services.
func (h *SiteHandler) Services(c *gin.Context) {
	h.page(c, "services.tmpl", "Services — Mile High Interface", gin.H{
		"Services": content.Services,
	})
}

// Work handles GET /work.
func (h *SiteHandler) Work(c *gin.Context) {
	h.page(c, "work.tmpl", "Work — Mile High Interface", gin.H{
		"CaseStudies": content.CaseStudies,
	})
}

// WorkDetail handles GET /work/:slug. Unknown slugs get a 404.
func (h *SiteHandler) WorkDetail(c *gin.Context) {
	cs, ok := content.CaseStudyBySlug(c.Param("slug"))
	if !ok {
		c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{
			"Title":   "Not Found — Mile High Interface",
			"AppName": h.cfg.AppName,
		})
		return
	}
	h.page(c, "work_detail.tmpl", cs.Title+" — Mile High Interface", gin.H{
		"CaseStudy": cs,
	})
}

// Contact handles GET /contact, the page hosting the discovery form.
func (h *SiteHandler) Contact(c *gin.Context) {
	h.page(c, "contact.tmpl", "Contact — Mile High Interface", nil)
}

// Privacy handles GET /privacy.
func (h *SiteHandler) Privacy(c *gin.Context) {
	h.page(c, "privacy.tmpl", "Privacy Policy — Mile High Interface", nil)
}

// Terms handles GET /terms.
func (h *SiteHandler) Terms(c *gin.Context) {
	h.page(c, "terms.tmpl", "Terms of Service — Mile High Interface", nil)
}
