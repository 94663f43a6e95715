// Package sanitize escapes business-supplied free text for safe embedding
// inside generated source-code string literals. Template bodies must only
// ever see the sanitized clone; raw field access is reserved for non-code
// consumers such as slug derivation.
package sanitize

import (
	"strings"

	"bizforge/internal/models"
)

// escapeSteps run in order. Backslash must come first: escaping quotes before
// backslashes would double-escape the substitutions it just produced.
var escapeSteps = []struct {
	old string
	new string
}{
	{`\`, `\\`},
	{`'`, `\'`},
	{`"`, `\"`},
	{"\n", `\n`},
	{"\r", `\r`},
}

// EscapeForCodeLiteral makes s safe to embed inside a single- or
// double-quoted source string literal.
func EscapeForCodeLiteral(s string) string {
	for _, step := range escapeSteps {
		s = strings.ReplaceAll(s, step.old, step.new)
	}
	return s
}

func escapeSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = EscapeForCodeLiteral(s)
	}
	return out
}

// Business returns a deep clone of b with every string field escaped. The
// input is left untouched.
func Business(b models.BusinessInfo) models.BusinessInfo {
	safe := b

	safe.Name = EscapeForCodeLiteral(b.Name)
	safe.Tagline = EscapeForCodeLiteral(b.Tagline)
	safe.Description = EscapeForCodeLiteral(b.Description)
	safe.BusinessType = EscapeForCodeLiteral(b.BusinessType)
	safe.Email = EscapeForCodeLiteral(b.Email)
	safe.Phone = EscapeForCodeLiteral(b.Phone)
	safe.Address = EscapeForCodeLiteral(b.Address)
	safe.City = EscapeForCodeLiteral(b.City)
	safe.State = EscapeForCodeLiteral(b.State)
	safe.ZipCode = EscapeForCodeLiteral(b.ZipCode)

	safe.GoogleURL = EscapeForCodeLiteral(b.GoogleURL)
	safe.FacebookURL = EscapeForCodeLiteral(b.FacebookURL)
	safe.InstagramURL = EscapeForCodeLiteral(b.InstagramURL)
	safe.LinkedInURL = EscapeForCodeLiteral(b.LinkedInURL)
	safe.YelpURL = EscapeForCodeLiteral(b.YelpURL)
	safe.TikTokURL = EscapeForCodeLiteral(b.TikTokURL)
	safe.YouTubeURL = EscapeForCodeLiteral(b.YouTubeURL)

	safe.Services = escapeSlice(b.Services)
	safe.ServiceAreas = escapeSlice(b.ServiceAreas)

	if b.Testimonials != nil {
		safe.Testimonials = make([]models.Testimonial, len(b.Testimonials))
		for i, tm := range b.Testimonials {
			safe.Testimonials[i] = models.Testimonial{
				Name:   EscapeForCodeLiteral(tm.Name),
				Text:   EscapeForCodeLiteral(tm.Text),
				Rating: tm.Rating,
			}
		}
	}

	if b.PortfolioSections != nil {
		safe.PortfolioSections = make([]models.PortfolioSection, len(b.PortfolioSections))
		for i, ps := range b.PortfolioSections {
			safe.PortfolioSections[i] = models.PortfolioSection{
				Title:       EscapeForCodeLiteral(ps.Title),
				Description: EscapeForCodeLiteral(ps.Description),
				Images:      escapeSlice(ps.Images),
			}
		}
	}

	if b.Pricing != nil {
		safe.Pricing = make([]models.PricingPackage, len(b.Pricing))
		for i, p := range b.Pricing {
			safe.Pricing[i] = models.PricingPackage{
				Name:        EscapeForCodeLiteral(p.Name),
				Price:       EscapeForCodeLiteral(p.Price),
				Description: EscapeForCodeLiteral(p.Description),
				Features:    escapeSlice(p.Features),
				IsPopular:   p.IsPopular,
			}
		}
	}

	if b.FAQs != nil {
		safe.FAQs = make([]models.FAQ, len(b.FAQs))
		for i, f := range b.FAQs {
			safe.FAQs[i] = models.FAQ{
				Question: EscapeForCodeLiteral(f.Question),
				Answer:   EscapeForCodeLiteral(f.Answer),
			}
		}
	}

	if b.Products != nil {
		safe.Products = make([]models.Product, len(b.Products))
		for i, p := range b.Products {
			safe.Products[i] = models.Product{
				Name:        EscapeForCodeLiteral(p.Name),
				Description: EscapeForCodeLiteral(p.Description),
				Price:       EscapeForCodeLiteral(p.Price),
				Image:       EscapeForCodeLiteral(p.Image),
			}
		}
	}

	safe.Logo = EscapeForCodeLiteral(b.Logo)
	safe.HeroImage = EscapeForCodeLiteral(b.HeroImage)

	if b.Branding != nil {
		cloned := *b.Branding
		safe.Branding = &cloned
	}

	safe.CalendlyURL = EscapeForCodeLiteral(b.CalendlyURL)

	if b.Menu != nil {
		menu := models.MenuConfig{
			MenuPDFURL: EscapeForCodeLiteral(b.Menu.MenuPDFURL),
		}
		if b.Menu.Categories != nil {
			menu.Categories = make([]models.MenuCategory, len(b.Menu.Categories))
			for i, cat := range b.Menu.Categories {
				items := make([]models.MenuItem, len(cat.Items))
				for j, item := range cat.Items {
					items[j] = models.MenuItem{
						Name:        EscapeForCodeLiteral(item.Name),
						Description: EscapeForCodeLiteral(item.Description),
						Price:       EscapeForCodeLiteral(item.Price),
					}
				}
				menu.Categories[i] = models.MenuCategory{
					Name:  EscapeForCodeLiteral(cat.Name),
					Items: items,
				}
			}
		}
		safe.Menu = &menu
	}

	if b.Booking != nil {
		safe.Booking = &models.BookingConfig{
			Enabled:      b.Booking.Enabled,
			Provider:     EscapeForCodeLiteral(b.Booking.Provider),
			Instructions: EscapeForCodeLiteral(b.Booking.Instructions),
		}
	}

	if b.Medical != nil {
		safe.Medical = &models.MedicalConfig{
			InsuranceAccepted: escapeSlice(b.Medical.InsuranceAccepted),
			Certifications:    escapeSlice(b.Medical.Certifications),
			EmergencyInfo:     EscapeForCodeLiteral(b.Medical.EmergencyInfo),
		}
	}

	if b.OpeningHours != nil {
		safe.OpeningHours = make(map[string]string, len(b.OpeningHours))
		for day, hours := range b.OpeningHours {
			safe.OpeningHours[day] = EscapeForCodeLiteral(hours)
		}
	}

	return safe
}
