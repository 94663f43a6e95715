// Package sitegen assembles a complete Next.js source tree from a business
// profile. Which pages and components exist depends only on the profile's
// data: optional content never produces an empty shell page.
package sitegen

import (
	"bizforge/internal/models"
	"bizforge/internal/sanitize"
	"bizforge/internal/seo"
)

// CTALabels is a primary/secondary action text pair for hero buttons.
type CTALabels struct {
	Primary   string
	Secondary string
}

// ctaLabels is keyed by the profile's primaryCTA selector.
var ctaLabels = map[string]CTALabels{
	models.CTACall:    {Primary: "Call Now", Secondary: "View Services"},
	models.CTABook:    {Primary: "Book Appointment", Secondary: "View Services"},
	models.CTAQuote:   {Primary: "Get a Free Quote", Secondary: "Our Services"},
	models.CTAVisit:   {Primary: "Get Directions", Secondary: "View Services"},
	models.CTAShop:    {Primary: "Shop Now", Secondary: "View Services"},
	models.CTAContact: {Primary: "Contact Us", Secondary: "View Services"},
}

func labelsFor(primaryCTA string) CTALabels {
	if labels, ok := ctaLabels[primaryCTA]; ok {
		return labels
	}
	return CTALabels{Primary: "Contact Us", Secondary: "View Services"}
}

// Generate produces the full file map for the framework-targeted site.
// Sanitization happens exactly once, here; string-literal emitters below work
// from the safe clone. The JSON-LD object and the package slug take the raw
// profile: json.Marshal escapes on its own, and the slug filter must see the
// name before escape sequences are introduced.
func Generate(biz models.BusinessInfo, baseURL string) models.FileMap {
	safe := sanitize.Business(biz)
	meta := seo.BuildMeta(safe, baseURL)
	jsonLD := seo.BuildJSONLD(biz, baseURL)

	files := models.FileMap{}

	// Project scaffold
	files["package.json"] = packageJSON(biz.Name)
	files["next.config.mjs"] = nextConfig()
	files["postcss.config.mjs"] = postcssConfig()
	files["tailwind.config.ts"] = tailwindConfig(biz.Branding)
	files["tsconfig.json"] = tsConfig()

	// Base pages and layout
	files["app/layout.tsx"] = layoutPage(safe, meta, jsonLD)
	files["app/globals.css"] = globalStylesheet(biz.Branding)
	files["app/page.tsx"] = homePage(safe)
	files["app/about/page.tsx"] = aboutPage(safe)
	files["app/services/page.tsx"] = servicesPage(safe)
	files["app/contact/page.tsx"] = contactPage(safe)

	// Base components
	files["components/Nav.tsx"] = navComponent(safe)
	files["components/Footer.tsx"] = footerComponent(safe)
	files["components/Hero.tsx"] = heroComponent(safe)
	files["components/Services.tsx"] = servicesComponent(safe)
	files["components/AboutPreview.tsx"] = aboutPreviewComponent(safe)
	files["components/Testimonials.tsx"] = testimonialsComponent(safe)
	files["components/CTASection.tsx"] = ctaSectionComponent(safe)

	// Conditional content: emitted iff the corresponding data exists.
	if safe.HasShop() {
		files["app/shop/page.tsx"] = shopPage(safe)
	}
	if safe.HasMenu() {
		files["app/menu/page.tsx"] = menuPage(safe)
	}
	if safe.HasBooking() {
		files["components/BookingSection.tsx"] = bookingComponent(safe)
	}
	if safe.HasMedical() {
		files["components/MedicalInfo.tsx"] = medicalComponent(safe)
	}
	if safe.HasPricing() {
		files["components/Pricing.tsx"] = pricingComponent(safe)
	}
	if safe.HasFAQs() {
		files["components/FAQ.tsx"] = faqComponent(safe)
	}

	extraPaths := []string{}
	if safe.HasShop() {
		extraPaths = append(extraPaths, "shop")
	}
	if safe.HasMenu() {
		extraPaths = append(extraPaths, "menu")
	}
	files["public/robots.txt"] = seo.RobotsTxt(baseURL)
	files["public/sitemap.xml"] = seo.Sitemap(baseURL, extraPaths)

	return files
}
