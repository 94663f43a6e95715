package staticgen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizforge/internal/models"
)

const testBaseURL = "https://joes-plumbing.netlify.app"

func testBusiness() models.BusinessInfo {
	return models.BusinessInfo{
		Name:         "Joe's Plumbing",
		BusinessType: "plumber",
		Description:  "Honest plumbing for Austin homes.",
		Address:      "1 Main St",
		City:         "Austin",
		State:        "TX",
		Phone:        "5125551234",
	}
}

func TestGenerateFileSet(t *testing.T) {
	files := Generate(testBusiness(), testBaseURL)

	want := []string{
		"index.html", "about.html", "services.html", "contact.html",
		"css/styles.css", "js/main.js", "robots.txt", "sitemap.xml",
	}
	require.Len(t, files, len(want))
	for _, path := range want {
		assert.Contains(t, files, path)
	}
}

func TestEmptySectionsRenderNothing(t *testing.T) {
	files := Generate(testBusiness(), testBaseURL)
	index := files["index.html"]

	assert.NotContains(t, index, "Our Services</h2>")
	assert.NotContains(t, index, "What Our Customers Say")
	assert.NotContains(t, index, "Our Work")
}

func TestPopulatedSectionsRender(t *testing.T) {
	biz := testBusiness()
	biz.Services = []string{"Drain Cleaning"}
	biz.Testimonials = []models.Testimonial{{Name: "Sam", Text: "Great work"}}
	biz.PortfolioSections = []models.PortfolioSection{
		{Title: "Kitchens", Images: []string{"https://img.example/1.jpg"}},
	}

	index := Generate(biz, testBaseURL)["index.html"]

	assert.Contains(t, index, "Our Services")
	assert.Contains(t, index, "Drain Cleaning")
	assert.Contains(t, index, "What Our Customers Say")
	assert.Contains(t, index, "Our Work")
	assert.Contains(t, index, `src="https://img.example/1.jpg"`)
}

func TestPortfolioFlattensAndCapsAtSix(t *testing.T) {
	sections := []models.PortfolioSection{
		{Title: "A", Images: []string{"a1", "a2", "a3", "a4"}},
		{Title: "B", Images: []string{"b1", "b2", "b3", "b4"}},
	}

	images := flattenPortfolio(sections)
	require.Len(t, images, 6)
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "b1", "b2"}, images)
}

func TestPortfolioSkipsEmptyImageEntries(t *testing.T) {
	sections := []models.PortfolioSection{
		{Title: "A", Images: []string{"", "a1", ""}},
	}
	assert.Equal(t, []string{"a1"}, flattenPortfolio(sections))
}

func TestJSONLDInlineInHead(t *testing.T) {
	index := Generate(testBusiness(), testBaseURL)["index.html"]

	assert.Contains(t, index, `<script type="application/ld+json">`)
	assert.Contains(t, index, `"@type": "Plumber"`)
}

func TestHTMLEscapingAppliedToProfileText(t *testing.T) {
	biz := testBusiness()
	biz.Name = `Joe's <Best> Plumbing`

	index := Generate(biz, testBaseURL)["index.html"]

	assert.Contains(t, index, "Joe&#39;s &lt;Best&gt; Plumbing")
	assert.NotContains(t, index, "<Best>")
}

func TestCallCTAContactBanner(t *testing.T) {
	biz := testBusiness()
	biz.PrimaryCTA = models.CTACall

	contact := Generate(biz, testBaseURL)["contact.html"]
	assert.Contains(t, contact, `href="tel:5125551234"`)
	assert.Contains(t, contact, "Fastest way to reach us")
}

func TestStylesheetBakesResolvedPalette(t *testing.T) {
	biz := testBusiness()
	biz.Branding = &models.BrandingConfig{
		ColorScheme:        "custom",
		CustomPrimaryColor: "#ff0000",
		FontStyle:          "elegant",
	}

	css := Generate(biz, testBaseURL)["css/styles.css"]

	assert.Contains(t, css, "--color-primary: #ff0000;")
	assert.Contains(t, css, "--brand-500: #ff0000;")
	assert.Contains(t, css, "--font-heading: 'Playfair Display', sans-serif;")
}

func TestFontStylesheetURLDedupesSharedFamily(t *testing.T) {
	url := fontStylesheetURL(&models.BrandingConfig{FontStyle: "modern"})
	assert.Equal(t, 1, strings.Count(url, "family="))

	url = fontStylesheetURL(&models.BrandingConfig{FontStyle: "elegant"})
	assert.Contains(t, url, "family=Playfair+Display:wght@400;700")
	assert.Contains(t, url, "family=Lato:wght@400;700")
}

func TestSitemapAndRobotsPresent(t *testing.T) {
	files := Generate(testBusiness(), testBaseURL)

	assert.Contains(t, files["robots.txt"], fmt.Sprintf("Sitemap: %s/sitemap.xml", testBaseURL))
	assert.Contains(t, files["sitemap.xml"], "<loc>"+testBaseURL+"</loc>")
	assert.Contains(t, files["sitemap.xml"], "<loc>"+testBaseURL+"/services</loc>")
}

func TestGenerateIdempotent(t *testing.T) {
	biz := testBusiness()
	biz.Services = []string{"Drain Cleaning", "Water Heaters"}

	a := Generate(biz, testBaseURL)
	b := Generate(biz, testBaseURL)
	assert.Equal(t, a, b)
}

func TestScriptContainsMenuToggleAndFormStub(t *testing.T) {
	js := Generate(testBusiness(), testBaseURL)["js/main.js"]

	assert.Contains(t, js, "nav-toggle")
	assert.Contains(t, js, "contact-form")
	assert.Contains(t, js, "form.reset()")
}
