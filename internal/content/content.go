// Package content holds the static site catalogue: the services offered and
// the published case studies. Rendered by the site handlers; nothing here is
// persisted or user-editable.
package content

// Service describes one service offering on the /services page.
type Service struct {
	ID          string
	Slug        string
	Title       string
	Description string
	Features    []string
}

// CaseStudy describes one portfolio entry on the /work pages.
type CaseStudy struct {
	Slug    string
	Title   string
	Summary string
	Tags    []string
}

// Services is the ordered service catalogue.
var Services = []Service{
	{
		ID:          "ui-engineering",
		Slug:        "ui-engineering",
		Title:       "Product & UI Engineering",
		Description: "Transform ideas into production-ready interfaces with scalable architectures and modern frameworks that users love.",
		Features: []string{
			"Component-driven architecture with design systems",
			"Performance optimization and Core Web Vitals tuning",
			"Accessibility compliance (WCAG 2.1 AA)",
			"Responsive design implementation",
		},
	},
	{
		ID:          "data-visualization",
		Slug:        "data-visualization",
		Title:       "Data Visualization & Analytics",
		Description: "Turn complex datasets into compelling visual stories that drive insights and enable data-driven decision making.",
		Features: []string{
			"Custom interactive charts and dashboards",
			"Real-time data streaming and updates",
			"Multi-dimensional data exploration interfaces",
			"Drill-down and filtering interactions",
		},
	},
	{
		ID:          "business-websites",
		Slug:        "business-websites",
		Title:       "Business Website Development",
		Description: "Professional websites that establish credibility, convert visitors, and grow with your business needs.",
		Features: []string{
			"Conversion-focused page structure",
			"Search engine optimization",
			"Content management workflows",
			"Analytics and lead tracking",
		},
	},
	{
		ID:          "mvp-development",
		Slug:        "mvp-development",
		Title:       "MVP Development & Validation",
		Description: "Rapidly validate product ideas with functional prototypes that attract users and secure funding.",
		Features: []string{
			"Rapid prototyping and iteration",
			"User feedback collection loops",
			"Scalable foundation for growth",
			"Investor-ready product demos",
		},
	},
}

// CaseStudies is the ordered portfolio.
var CaseStudies = []CaseStudy{
	{
		Slug:    "pinpoint-civic-engagement",
		Title:   "Pinpoint — Civic Engagement Platform",
		Summary: "Data visualization + AI messaging to help constituents reach officials.",
		Tags:    []string{"civic-tech", "d3", "nextjs"},
	},
	{
		Slug:    "moody-tunes",
		Title:   "Moody Tunes — Emotion-based Music Recs",
		Summary: "Spotify-powered recommendations conditioned on mood & era.",
		Tags:    []string{"react-native", "spotify", "ml"},
	},
}

// CaseStudyBySlug looks a case study up by its URL slug.
func CaseStudyBySlug(slug string) (CaseStudy, bool) {
	for _, cs := range CaseStudies {
		if cs.Slug == slug {
			return cs, true
		}
	}
	return CaseStudy{}, false
}

// ServiceBySlug looks a service up by its URL slug.
func ServiceBySlug(slug string) (Service, bool) {
	for _, s := range Services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}
