// internal/models/business.go
package models

// BusinessInfo is the canonical input record describing one business. It is
// assembled once per onboarding session by the client, passed by value into
// the generators and never mutated by them.
type BusinessInfo struct {
	// Identity
	Name            string `json:"name"`
	Tagline         string `json:"tagline,omitempty"`
	Description     string `json:"description"`
	BusinessType    string `json:"businessType"`
	YearsInBusiness int    `json:"yearsInBusiness,omitempty"`

	// Contact
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`

	// Online presence
	GoogleURL    string `json:"googleUrl,omitempty"`
	FacebookURL  string `json:"facebookUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	LinkedInURL  string `json:"linkedinUrl,omitempty"`
	YelpURL      string `json:"yelpUrl,omitempty"`
	TikTokURL    string `json:"tiktokUrl,omitempty"`
	YouTubeURL   string `json:"youtubeUrl,omitempty"`

	// Catalog data
	Services          []string           `json:"services,omitempty"`
	ServiceAreas      []string           `json:"serviceAreas,omitempty"`
	Testimonials      []Testimonial      `json:"testimonials,omitempty"`
	PortfolioSections []PortfolioSection `json:"portfolioSections,omitempty"`
	Pricing           []PricingPackage   `json:"pricing,omitempty"`
	FAQs              []FAQ              `json:"faqs,omitempty"`
	Products          []Product          `json:"products,omitempty"`

	// Presentation
	Logo      string          `json:"logo,omitempty"`
	HeroImage string          `json:"heroImage,omitempty"`
	Branding  *BrandingConfig `json:"branding,omitempty"`

	// Behavior selectors
	PrimaryCTA  string         `json:"primaryCta,omitempty"` // call|book|quote|visit|shop|contact
	CalendlyURL string         `json:"calendlyUrl,omitempty"`
	Menu        *MenuConfig    `json:"menu,omitempty"`
	Booking     *BookingConfig `json:"booking,omitempty"`
	Medical     *MedicalConfig `json:"medical,omitempty"`

	// Fixed day-name keys ("monday".."sunday") mapped to free-text hours.
	OpeningHours map[string]string `json:"openingHours,omitempty"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating,omitempty"`
}

type PortfolioSection struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type PricingPackage struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	IsPopular   bool     `json:"isPopular,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Product struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
}

// BrandingConfig selects one of the named palettes and font pairings, or
// carries custom hex overrides when ColorScheme is "custom".
type BrandingConfig struct {
	ColorScheme          string `json:"colorScheme,omitempty"`
	CustomPrimaryColor   string `json:"customPrimaryColor,omitempty"`
	CustomSecondaryColor string `json:"customSecondaryColor,omitempty"`
	FontStyle            string `json:"fontStyle,omitempty"`
	BrandTone            string `json:"brandTone,omitempty"` // used only for AI copy prompts
}

type MenuConfig struct {
	Categories []MenuCategory `json:"categories,omitempty"`
	MenuPDFURL string         `json:"menuPdfUrl,omitempty"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items,omitempty"`
}

type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

type BookingConfig struct {
	Enabled      bool   `json:"enabled"`
	Provider     string `json:"provider,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type MedicalConfig struct {
	InsuranceAccepted []string `json:"insuranceAccepted,omitempty"`
	Certifications    []string `json:"certifications,omitempty"`
	EmergencyInfo     string   `json:"emergencyInfo,omitempty"`
}

// Primary CTA values
const (
	CTACall    = "call"
	CTABook    = "book"
	CTAQuote   = "quote"
	CTAVisit   = "visit"
	CTAShop    = "shop"
	CTAContact = "contact"
)

// DayNames lists the OpeningHours keys in display order.
var DayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// FileMap is a generator's output: relative file path to full file contents.
type FileMap map[string]string

// HasShop reports whether the generated site gets a shop page.
func (b BusinessInfo) HasShop() bool { return len(b.Products) > 0 }

// HasMenu reports whether the generated site gets a menu page.
func (b BusinessInfo) HasMenu() bool {
	return b.Menu != nil && (len(b.Menu.Categories) > 0 || b.Menu.MenuPDFURL != "")
}

// HasBooking reports whether the booking section component is emitted.
func (b BusinessInfo) HasBooking() bool { return b.Booking != nil && b.Booking.Enabled }

// HasMedical reports whether the medical-info component is emitted.
func (b BusinessInfo) HasMedical() bool { return b.Medical != nil }

// HasPricing reports whether the pricing component is emitted.
func (b BusinessInfo) HasPricing() bool { return len(b.Pricing) > 0 }

// HasFAQs reports whether the FAQ component is emitted.
func (b BusinessInfo) HasFAQs() bool { return len(b.FAQs) > 0 }
