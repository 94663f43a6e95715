// Package staticgen renders a business profile into a dependency-free
// static website: four plain HTML pages, one stylesheet and one small
// script, with no framework or build step required. It is the sibling of
// the framework generator and shares its SEO and branding helpers, but
// targets hosts where a flat file drop is the whole deployment.
package staticgen

import (
	"html"

	"bizforge/internal/models"
	"bizforge/internal/seo"
)

// maxPortfolioImages caps the gallery regardless of how many images the
// profile carries.
const maxPortfolioImages = 6

type ctaLabels struct {
	Primary   string
	Secondary string
}

var ctaLabelTable = map[string]ctaLabels{
	models.CTACall:    {"Call Now", "Our Services"},
	models.CTABook:    {"Book Appointment", "Our Services"},
	models.CTAQuote:   {"Get a Free Quote", "Our Services"},
	models.CTAVisit:   {"Get Directions", "Our Services"},
	models.CTAShop:    {"Shop Now", "Our Services"},
	models.CTAContact: {"Contact Us", "View Services"},
}

func labelsFor(primaryCTA string) ctaLabels {
	if l, ok := ctaLabelTable[primaryCTA]; ok {
		return l
	}
	return ctaLabels{"Contact Us", "View Services"}
}

// Generate renders the complete static site for biz as a path to file-text
// map. Output is deterministic for a given profile apart from the sitemap
// date stamp and footer year.
func Generate(biz models.BusinessInfo, baseURL string) models.FileMap {
	meta := seo.BuildMeta(biz, baseURL)
	jsonLD := seo.BuildJSONLD(biz, baseURL)

	return models.FileMap{
		"index.html":     indexPage(biz, meta, jsonLD),
		"about.html":     aboutPage(biz, meta, jsonLD),
		"services.html":  servicesPage(biz, meta, jsonLD),
		"contact.html":   contactPage(biz, meta, jsonLD),
		"css/styles.css": stylesheet(biz.Branding),
		"js/main.js":     mainScript(),
		"robots.txt":     seo.RobotsTxt(baseURL),
		"sitemap.xml":    seo.Sitemap(baseURL, nil),
	}
}

// esc is the single escaping point for profile text interpolated into HTML.
func esc(s string) string {
	return html.EscapeString(s)
}

// flattenPortfolio collects every image URL across all portfolio sections,
// in section order, capped at maxPortfolioImages.
func flattenPortfolio(sections []models.PortfolioSection) []string {
	var images []string
	for _, section := range sections {
		for _, img := range section.Images {
			if img == "" {
				continue
			}
			images = append(images, img)
			if len(images) == maxPortfolioImages {
				return images
			}
		}
	}
	return images
}
